package leaveerrors

import (
	"go-leave/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
	)
	ErrNotManager = apperror.New(
		apperror.CodeForbidden,
		"approval requires manager privileges",
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave request is not pending",
	)
)
