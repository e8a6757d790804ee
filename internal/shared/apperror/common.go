package apperror

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to perform this action",
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required")
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid")
}
