package leave

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HolidayChecker is the calendar consulted before accepting a start date.
type HolidayChecker interface {
	IsHoliday(date string) bool
}

// Service is the leave ledger: it owns every balance and history mutation.
// Replies are plain text shown to the user as-is; an error return means the
// caller could not be served at all (unknown employee, persistence failure),
// while validation and business rejections come back as replies with no
// mutation performed.
type Service interface {
	CheckBalance(name, leaveType string) (string, error)
	RequestLeave(name, leaveType, numDays, startDate string) (string, error)
	CancelLeave(name, leaveType, startDate string) (string, error)
	ViewHistory(name string) (string, error)
	ApproveAll(caller, target string) (string, error)

	PendingRequests(name string) ([]store.LeaveRequest, error)
	EmployeesWithPending() []string
	Decide(target, requestID string, approve bool) (string, error)
}

type service struct {
	store    *store.Store
	holidays HolidayChecker
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(st *store.Store, holidays HolidayChecker, logger ...*zap.Logger) Service {
	return NewServiceWithClock(st, holidays, time.Now, logger...)
}

func NewServiceWithClock(st *store.Store, holidays HolidayChecker, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{store: st, holidays: holidays, now: now, logger: l}
}

func (s *service) CheckBalance(name, leaveType string) (string, error) {
	emp := s.store.Employee(name)
	if emp == nil {
		return "", leaveerrors.ErrEmployeeNotFound
	}

	if leaveType == "" {
		lines := []string{"Your current leave balances are:"}
		for _, t := range balanceTypes(emp.LeaveBalance) {
			lines = append(lines, fmt.Sprintf("- %s: %d days", t, emp.LeaveBalance[t]))
		}
		return strings.Join(lines, "\n"), nil
	}

	balance := emp.LeaveBalance[leaveType]
	return fmt.Sprintf("You have %d %s remaining.", balance, leaveType), nil
}

func (s *service) RequestLeave(name, leaveType, numDays, startDate string) (string, error) {
	s.logger.Debug("request leave",
		zap.String("employee", name),
		zap.String("leave_type", leaveType),
		zap.String("num_days", numDays),
		zap.String("start_date", startDate),
	)

	emp := s.store.Employee(name)
	if emp == nil {
		return "", leaveerrors.ErrEmployeeNotFound
	}

	if leaveType == "" {
		return "Please specify the type of leave you want to request.", nil
	}
	if numDays == "" {
		return "Please specify how many days you want to take.", nil
	}
	days, err := strconv.Atoi(numDays)
	if err != nil {
		return "Invalid number of leave days.", nil
	}
	if days <= 0 {
		return "Number of leave days must be a positive integer.", nil
	}
	if startDate == "" {
		return "Please provide a valid start date.", nil
	}
	if !s.validDate(startDate) {
		return "Invalid start date format. Use YYYY-MM-DD.", nil
	}
	if s.holidays.IsHoliday(startDate) {
		return fmt.Sprintf("%s is a holiday. Choose another date.", startDate), nil
	}

	balance := emp.LeaveBalance[leaveType]
	if balance < days {
		s.logger.Warn("request leave insufficient balance",
			zap.String("employee", name),
			zap.String("leave_type", leaveType),
			zap.Int("balance", balance),
			zap.Int("requested", days),
		)
		return fmt.Sprintf("Sorry, you only have %d %s leave left.", balance, leaveType), nil
	}

	if emp.LeaveBalance == nil {
		emp.LeaveBalance = map[string]int{}
	}
	emp.LeaveBalance[leaveType] -= days
	emp.LeaveHistory = append(emp.LeaveHistory, store.LeaveRequest{
		ID:          uuid.NewString(),
		Type:        leaveType,
		Days:        days,
		StartDate:   startDate,
		Status:      StatusPending,
		RequestedOn: s.today().Format("2006-01-02"),
	})

	if err := s.store.Save(); err != nil {
		s.logger.Error("request leave persist failed", zap.Error(err))
		return "", err
	}
	s.store.Audit(fmt.Sprintf("%s requested %d %s leave(s) from %s. Pending approval.", name, days, leaveType, startDate))
	s.logger.Info("request leave success",
		zap.String("employee", name),
		zap.String("leave_type", leaveType),
		zap.Int("days", days),
	)

	return fmt.Sprintf("%d %s leave(s) requested from %s. Pending manager approval.", days, leaveType, startDate), nil
}

func (s *service) CancelLeave(name, leaveType, startDate string) (string, error) {
	s.logger.Debug("cancel leave",
		zap.String("employee", name),
		zap.String("leave_type", leaveType),
		zap.String("start_date", startDate),
	)

	emp := s.store.Employee(name)
	if emp == nil {
		return "", leaveerrors.ErrEmployeeNotFound
	}
	if len(emp.LeaveHistory) == 0 {
		return "You have no leave history.", nil
	}
	if leaveType == "" || startDate == "" {
		return "Please specify both the type of leave and the start date to cancel a leave request.", nil
	}
	if !s.validDate(startDate) {
		return "Invalid start date format. Use YYYY-MM-DD.", nil
	}

	// First matching entry only, in stored order.
	for i := range emp.LeaveHistory {
		req := &emp.LeaveHistory[i]
		if req.Status != StatusPending && req.Status != StatusApproved {
			continue
		}
		if req.StartDate != startDate || req.Type != leaveType {
			continue
		}

		req.Status = StatusCancelled
		if emp.LeaveBalance == nil {
			emp.LeaveBalance = map[string]int{}
		}
		emp.LeaveBalance[req.Type] += req.Days

		if err := s.store.Save(); err != nil {
			s.logger.Error("cancel leave persist failed", zap.Error(err))
			return "", err
		}
		s.store.Audit(fmt.Sprintf("%s cancelled a leave request for %s starting on %s.", name, leaveType, startDate))
		s.logger.Info("cancel leave success",
			zap.String("employee", name),
			zap.String("request_id", req.ID),
		)
		return "Leave cancelled successfully.", nil
	}

	return "No matching leave found to cancel.", nil
}

func (s *service) ViewHistory(name string) (string, error) {
	emp := s.store.Employee(name)
	if emp == nil {
		return "", leaveerrors.ErrEmployeeNotFound
	}
	if len(emp.LeaveHistory) == 0 {
		return "You have no leave history.", nil
	}

	lines := make([]string, len(emp.LeaveHistory))
	for i, h := range emp.LeaveHistory {
		lines[i] = fmt.Sprintf("%s leave on %s for %d day(s) - %s", h.Type, h.StartDate, h.Days, h.Status)
	}
	return strings.Join(lines, "\n"), nil
}

func (s *service) ApproveAll(caller, target string) (string, error) {
	actor := s.store.Employee(caller)
	if actor == nil {
		return "", leaveerrors.ErrEmployeeNotFound
	}
	if !actor.IsManager {
		return "", leaveerrors.ErrNotManager
	}

	emp := s.store.Employee(target)
	if emp == nil {
		return "Employee not found.", nil
	}

	approved := 0
	for i := range emp.LeaveHistory {
		if emp.LeaveHistory[i].Status == StatusPending {
			emp.LeaveHistory[i].Status = StatusApproved
			approved++
		}
	}
	if approved == 0 {
		return "No pending requests for this employee.", nil
	}

	if err := s.store.Save(); err != nil {
		s.logger.Error("approve all persist failed", zap.Error(err))
		return "", err
	}
	s.store.Audit(fmt.Sprintf("%s approved all pending leaves for %s.", caller, target))
	s.logger.Info("approve all success",
		zap.String("manager", caller),
		zap.String("target", target),
		zap.Int("approved", approved),
	)
	return fmt.Sprintf("All pending leaves for %s have been approved.", target), nil
}

func (s *service) PendingRequests(name string) ([]store.LeaveRequest, error) {
	emp := s.store.Employee(name)
	if emp == nil {
		return nil, leaveerrors.ErrEmployeeNotFound
	}
	var pending []store.LeaveRequest
	for _, req := range emp.LeaveHistory {
		if req.Status == StatusPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

func (s *service) EmployeesWithPending() []string {
	var names []string
	for name, emp := range s.store.Data.Employees {
		for _, req := range emp.LeaveHistory {
			if req.Status == StatusPending {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// Decide resolves one pending request: approve keeps the deduction, deny
// refunds it. This is the admin console's per-request path, distinct from
// the manager's bulk ApproveAll.
func (s *service) Decide(target, requestID string, approve bool) (string, error) {
	emp := s.store.Employee(target)
	if emp == nil {
		return "", leaveerrors.ErrEmployeeNotFound
	}

	for i := range emp.LeaveHistory {
		req := &emp.LeaveHistory[i]
		if req.ID != requestID {
			continue
		}
		if req.Status != StatusPending {
			return "", leaveerrors.ErrRequestNotPending
		}

		if approve {
			req.Status = StatusApproved
			if err := s.store.Save(); err != nil {
				s.logger.Error("approve request persist failed", zap.Error(err))
				return "", err
			}
			s.store.Audit(fmt.Sprintf("Admin approved %d %s leave(s) for %s starting %s.", req.Days, req.Type, target, req.StartDate))
			return "Request approved.", nil
		}

		req.Status = StatusDenied
		if emp.LeaveBalance == nil {
			emp.LeaveBalance = map[string]int{}
		}
		emp.LeaveBalance[req.Type] += req.Days
		if err := s.store.Save(); err != nil {
			s.logger.Error("deny request persist failed", zap.Error(err))
			return "", err
		}
		s.store.Audit(fmt.Sprintf("Admin denied %d %s leave(s) for %s starting %s.", req.Days, req.Type, target, req.StartDate))
		return "Request denied and leave balance refunded.", nil
	}

	return "", leaveerrors.ErrRequestNotFound
}

// today truncates the clock to a calendar date.
func (s *service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// validDate accepts YYYY-MM-DD dates that are today or later.
func (s *service) validDate(v string) bool {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return false
	}
	return !t.Before(s.today())
}

// balanceTypes lists balance keys deterministically: canonical types first,
// then any extras in lexical order.
func balanceTypes(balances map[string]int) []string {
	var out []string
	seen := map[string]bool{}
	for _, t := range Types() {
		if _, ok := balances[t]; ok {
			out = append(out, t)
			seen[t] = true
		}
	}
	var extras []string
	for t := range balances {
		if !seen[t] {
			extras = append(extras, t)
		}
	}
	sort.Strings(extras)
	return append(out, extras...)
}
