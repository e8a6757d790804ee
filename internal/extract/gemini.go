package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-leave/internal/nlp"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const systemInstruction = "You are an HR assistant helping employees with leave management. " +
	"Extract the intent and entities (leave_type, num_days, start_date) from the user input. " +
	"Return them in JSON format with keys 'intent' and 'entities'."

const requestTimeout = 15 * time.Second

// GeminiExtractor asks the Gemini API for intent and entities. One
// synchronous call, no retries; any fault is returned for the caller to
// fall back on.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string, logger ...*zap.Logger) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	l := zap.L().Named("extract.gemini")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("extract.gemini")
	}
	return &GeminiExtractor{client: client, model: model, logger: l}, nil
}

func (g *GeminiExtractor) Extract(ctx context.Context, text string) (nlp.Intent, nlp.Entities, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return nlp.IntentUnknown, nlp.Entities{}, fmt.Errorf("gemini generate: %w", err)
	}

	intent, entities, err := parseReply(resp.Text())
	if err != nil {
		return nlp.IntentUnknown, nlp.Entities{}, err
	}
	g.logger.Debug("remote extraction succeeded",
		zap.String("intent", string(intent)),
		zap.String("leave_type", entities.LeaveType),
	)
	return intent, entities, nil
}

type replyPayload struct {
	Intent   string         `json:"intent"`
	Entities map[string]any `json:"entities"`
}

// parseReply decodes the model's JSON answer. Models occasionally wrap the
// payload in a markdown fence even with a JSON MIME type requested.
func parseReply(reply string) (nlp.Intent, nlp.Entities, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	var payload replyPayload
	if err := json.Unmarshal([]byte(reply), &payload); err != nil {
		return nlp.IntentUnknown, nlp.Entities{}, fmt.Errorf("decode extraction reply: %w", err)
	}

	intent := nlp.Intent(payload.Intent)
	if intent == "" {
		intent = nlp.IntentUnknown
	}

	entities := nlp.Entities{
		LeaveType:    entityString(payload.Entities["leave_type"]),
		NumDays:      entityString(payload.Entities["num_days"]),
		StartDate:    entityString(payload.Entities["start_date"]),
		EmployeeName: entityString(payload.Entities["employee_name"]),
	}
	return intent, entities, nil
}

// entityString normalizes a JSON value: models answer with numbers or
// strings interchangeably, and null means absent.
func entityString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		if strings.EqualFold(t, "null") || strings.EqualFold(t, "none") {
			return ""
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
