package employee

import (
	"fmt"
	"sort"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/store"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service manages employee records for the administrative console.
// Replies are the plain text shown to the admin; errors cover invalid
// input, unknown employees and persistence failures.
type Service interface {
	Add(req CreateEmployeeRequest) (string, error)
	Update(name string, req UpdateEmployeeRequest) (string, error)
	Delete(name string) (string, error)
	Names() []string
	Exists(name string) bool
	IsManager(name string) bool
	Get(name string) (EmployeeResponse, error)
}

type service struct {
	store    *store.Store
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		store:    st,
		validate: apperror.NewValidator(),
		logger:   l,
	}
}

func (s *service) Add(req CreateEmployeeRequest) (string, error) {
	s.logger.Debug("add employee requested",
		zap.String("name", req.Name),
		zap.Bool("is_manager", req.IsManager),
	)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("add employee validation failed", zap.Error(err))
		return "", apperror.MapValidationError(err)
	}
	if s.store.Employee(req.Name) != nil {
		return "Employee already exists.", nil
	}

	s.store.Data.Employees[req.Name] = &store.Employee{
		IsManager:    req.IsManager,
		LeaveBalance: req.Balances,
		LeaveHistory: []store.LeaveRequest{},
	}
	if err := s.store.Save(); err != nil {
		s.logger.Error("add employee persist failed", zap.Error(err))
		return "", err
	}
	s.store.Audit(fmt.Sprintf("Admin added new employee %s.", req.Name))
	s.logger.Info("add employee success", zap.String("name", req.Name))

	return fmt.Sprintf("Employee %s added successfully.", req.Name), nil
}

func (s *service) Update(name string, req UpdateEmployeeRequest) (string, error) {
	s.logger.Debug("update employee requested", zap.String("name", name))

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("update employee validation failed", zap.Error(err))
		return "", apperror.MapValidationError(err)
	}
	emp := s.store.Employee(name)
	if emp == nil {
		return "", employeeerrors.ErrEmployeeNotFound
	}

	if req.Balances != nil {
		emp.LeaveBalance = req.Balances
	}
	if req.IsManager != nil {
		emp.IsManager = *req.IsManager
	}

	if err := s.store.Save(); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return "", err
	}
	s.store.Audit(fmt.Sprintf("Admin edited employee %s.", name))
	s.logger.Info("update employee success", zap.String("name", name))

	return fmt.Sprintf("Employee %s updated successfully.", name), nil
}

func (s *service) Delete(name string) (string, error) {
	if s.store.Employee(name) == nil {
		return "", employeeerrors.ErrEmployeeNotFound
	}

	delete(s.store.Data.Employees, name)
	if err := s.store.Save(); err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return "", err
	}
	s.store.Audit(fmt.Sprintf("Admin deleted employee %s and all their records.", name))
	s.logger.Info("delete employee success", zap.String("name", name))

	return fmt.Sprintf("Employee '%s' has been deleted from the system.", name), nil
}

func (s *service) Names() []string {
	names := make([]string, 0, len(s.store.Data.Employees))
	for name := range s.store.Data.Employees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *service) Exists(name string) bool {
	return s.store.Employee(name) != nil
}

func (s *service) IsManager(name string) bool {
	emp := s.store.Employee(name)
	return emp != nil && emp.IsManager
}

func (s *service) Get(name string) (EmployeeResponse, error) {
	emp := s.store.Employee(name)
	if emp == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return EmployeeResponse{
		Name:      name,
		IsManager: emp.IsManager,
		Balances:  emp.LeaveBalance,
	}, nil
}
