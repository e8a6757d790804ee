package employeeerrors

import (
	"go-leave/internal/shared/apperror"
)

var ErrEmployeeNotFound = apperror.New(
	apperror.CodeNotFound,
	"Employee not found",
)
