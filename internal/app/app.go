package app

import (
	"context"
	"io"
	"time"

	"go-leave/internal/assistant"
	"go-leave/internal/config"
	"go-leave/internal/console"
	"go-leave/internal/employee"
	"go-leave/internal/extract"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/nlp"
	"go-leave/internal/store"

	"go.uber.org/zap"
)

// BuildConsole wires the whole dependency graph: store, domain services,
// extractor chain and the interactive console.
func BuildConsole(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, logger *zap.Logger) (*console.Console, error) {
	st := store.New(cfg.DataFile, cfg.AuditLog, logger)
	if err := st.Seed(); err != nil {
		return nil, err
	}
	if err := st.Load(); err != nil {
		return nil, err
	}

	holidaySvc := holiday.NewService(st, logger)
	employeeSvc := employee.NewService(st, logger)
	leaveSvc := leave.NewService(st, holidaySvc, logger)

	resolver := nlp.NewDateResolver(time.Now)
	classifier := nlp.NewClassifier(resolver)

	var extractor extract.Extractor = extract.NewRuleExtractor(classifier)
	if cfg.UseAI() {
		remote, err := extract.NewGeminiExtractor(ctx, cfg.GeminiKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Warn("remote extractor unavailable, using rule-based extraction only", zap.Error(err))
		} else {
			extractor = extract.NewFallback(remote, extractor, logger)
		}
	}

	asst := assistant.NewService(extractor, employeeSvc, leaveSvc, logger)
	return console.New(in, out, st, employeeSvc, holidaySvc, leaveSvc, asst, logger), nil
}
