package assistant

import (
	"context"

	"go-leave/internal/employee"
	"go-leave/internal/extract"
	"go-leave/internal/leave"
	"go-leave/internal/nlp"

	"go.uber.org/zap"
)

const fallbackReply = "Sorry, I didn't understand that."

// Service adjudicates employee utterances: it is the single entry point
// the interactive shells invoke per message. Replies are user-facing text;
// an error means persistence failed and the current operation is fatal.
type Service interface {
	HandleUtterance(ctx context.Context, name, text string) (string, error)
	Adjudicate(name string, intent nlp.Intent, entities nlp.Entities) (string, error)
}

type service struct {
	extractor extract.Extractor
	employees employee.Service
	leaves    leave.Service
	logger    *zap.Logger
}

func NewService(extractor extract.Extractor, employees employee.Service, leaves leave.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("assistant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.service")
	}
	return &service{
		extractor: extractor,
		employees: employees,
		leaves:    leaves,
		logger:    l,
	}
}

func (s *service) HandleUtterance(ctx context.Context, name, text string) (string, error) {
	intent, entities, err := s.extractor.Extract(ctx, text)
	if err != nil {
		// Only possible without a rule-based fallback in the chain;
		// treat as not understood rather than failing the session.
		s.logger.Warn("extraction failed", zap.Error(err))
		return fallbackReply, nil
	}

	s.logger.Debug("utterance classified",
		zap.String("employee", name),
		zap.String("intent", string(intent)),
		zap.String("leave_type", entities.LeaveType),
		zap.String("num_days", entities.NumDays),
		zap.String("start_date", entities.StartDate),
	)
	return s.Adjudicate(name, intent, entities)
}

func (s *service) Adjudicate(name string, intent nlp.Intent, entities nlp.Entities) (string, error) {
	if !s.employees.Exists(name) {
		return "Employee not found in the system.", nil
	}

	switch intent {
	case nlp.IntentCheckBalance:
		return s.leaves.CheckBalance(name, entities.LeaveType)
	case nlp.IntentRequestLeave:
		return s.leaves.RequestLeave(name, entities.LeaveType, entities.NumDays, entities.StartDate)
	case nlp.IntentCancelLeave:
		return s.leaves.CancelLeave(name, entities.LeaveType, entities.StartDate)
	case nlp.IntentViewHistory:
		return s.leaves.ViewHistory(name)
	case nlp.IntentApproveLeave:
		if !s.employees.IsManager(name) {
			return fallbackReply, nil
		}
		return s.leaves.ApproveAll(name, entities.EmployeeName)
	default:
		return fallbackReply, nil
	}
}
