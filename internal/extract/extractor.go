package extract

import (
	"context"
	"strings"

	"go-leave/internal/nlp"

	"go.uber.org/zap"
)

// Extractor turns a raw utterance into an intent plus entities. The rule
// extractor never fails; remote implementations may, in which case callers
// fall back rather than surfacing the error.
type Extractor interface {
	Extract(ctx context.Context, text string) (nlp.Intent, nlp.Entities, error)
}

// RuleExtractor wraps the local keyword classifier.
type RuleExtractor struct {
	classifier *nlp.Classifier
}

func NewRuleExtractor(classifier *nlp.Classifier) *RuleExtractor {
	return &RuleExtractor{classifier: classifier}
}

func (r *RuleExtractor) Extract(_ context.Context, text string) (nlp.Intent, nlp.Entities, error) {
	intent, entities := r.classifier.Classify(text)
	return intent, entities, nil
}

// Fallback tries primary and silently falls back on any failure. Quota
// errors are suppressed from the diagnostic log; everything else is logged
// at Warn. The end user never sees an extraction failure.
type Fallback struct {
	primary   Extractor
	secondary Extractor
	logger    *zap.Logger
}

func NewFallback(primary, secondary Extractor, logger ...*zap.Logger) *Fallback {
	l := zap.L().Named("extract")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("extract")
	}
	return &Fallback{primary: primary, secondary: secondary, logger: l}
}

func (f *Fallback) Extract(ctx context.Context, text string) (nlp.Intent, nlp.Entities, error) {
	intent, entities, err := f.primary.Extract(ctx, text)
	if err == nil {
		return intent, entities, nil
	}
	if !isQuotaError(err) {
		f.logger.Warn("remote extraction failed, falling back to rules", zap.Error(err))
	}
	return f.secondary.Extract(ctx, text)
}

func isQuotaError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted")
}
