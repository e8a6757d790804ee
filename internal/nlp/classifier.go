package nlp

import (
	"regexp"
	"strings"

	"go-leave/internal/leave"
)

var (
	historyPhrases = []string{
		"history",
		"show all my previous",
		"what leaves have i taken",
		"leave record",
		"display my leave",
		"past leave",
		"previous leave request",
		"what is my past leave",
		"all my previous leave",
	}
	balanceKeywords = []string{"balance", "how many", "do i have", "remaining", "left"}
	requestKeywords = []string{"take", "request", "need", "off", "leave", "days", "day"}

	numberRe = regexp.MustCompile(`\b\d+\b`)
)

type intentRule struct {
	intent Intent
	match  func(text string) bool
}

// Classifier maps free text to one intent plus extracted entities. Rules
// are evaluated in a fixed priority order and the first match wins; entity
// extraction is independent of which rule fired.
type Classifier struct {
	resolver *DateResolver
	rules    []intentRule
	typeRes  []typeMatcher
}

type typeMatcher struct {
	re        *regexp.Regexp
	canonical string
}

func NewClassifier(resolver *DateResolver) *Classifier {
	c := &Classifier{resolver: resolver}
	c.rules = []intentRule{
		{IntentViewHistory, containsAny(historyPhrases)},
		{IntentCancelLeave, containsAny([]string{"cancel"})},
		{IntentCheckBalance, containsAny(balanceKeywords)},
		{IntentRequestLeave, containsAny(requestKeywords)},
	}
	for _, tk := range leave.TypeKeywords {
		c.typeRes = append(c.typeRes, typeMatcher{
			re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(tk.Keyword) + `\b`),
			canonical: tk.Canonical,
		})
	}
	return c
}

func (c *Classifier) Classify(text string) (Intent, Entities) {
	lower := strings.ToLower(text)

	intent := IntentUnknown
	for _, r := range c.rules {
		if r.match(lower) {
			intent = r.intent
			break
		}
	}

	var entities Entities
	for _, tm := range c.typeRes {
		if tm.re.MatchString(lower) {
			entities.LeaveType = tm.canonical
			break
		}
	}
	// First standalone integer in the raw text.
	entities.NumDays = numberRe.FindString(text)
	if date, ok := c.resolver.Resolve(text); ok {
		entities.StartDate = date
	}

	return intent, entities
}

func containsAny(phrases []string) func(string) bool {
	return func(text string) bool {
		for _, p := range phrases {
			if strings.Contains(text, p) {
				return true
			}
		}
		return false
	}
}
