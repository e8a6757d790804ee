package holiday

import (
	"fmt"
	"time"

	"go-leave/internal/store"

	"go.uber.org/zap"
)

// Service is the holiday calendar. Dates on it block new leave requests
// from starting there.
type Service interface {
	IsHoliday(date string) bool
	Add(date string) (string, error)
	Dates() []string
}

type service struct {
	store  *store.Store
	now    func() time.Time
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	return NewServiceWithClock(st, time.Now, logger...)
}

func NewServiceWithClock(st *store.Store, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{store: st, now: now, logger: l}
}

func (s *service) IsHoliday(date string) bool {
	for _, d := range s.store.Data.Holidays {
		if d == date {
			return true
		}
	}
	return false
}

// Add appends a holiday. Duplicates are rejected, malformed and past
// dates too.
func (s *service) Add(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Invalid date format. Use YYYY-MM-DD.", nil
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if t.Before(today) {
		return "Invalid date format. Use YYYY-MM-DD.", nil
	}
	if s.IsHoliday(date) {
		return "Holiday already exists.", nil
	}

	s.store.Data.Holidays = append(s.store.Data.Holidays, date)
	if err := s.store.Save(); err != nil {
		s.logger.Error("add holiday persist failed", zap.Error(err))
		return "", err
	}
	s.store.Audit(fmt.Sprintf("Admin added holiday %s.", date))
	s.logger.Info("holiday added", zap.String("date", date))

	return fmt.Sprintf("Holiday %s added.", date), nil
}

func (s *service) Dates() []string {
	return append([]string(nil), s.store.Data.Holidays...)
}
