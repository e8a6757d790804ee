package employee

type CreateEmployeeRequest struct {
	Name      string         `json:"name" validate:"required"`
	Balances  map[string]int `json:"leave_balance" validate:"required,dive,gte=0"`
	IsManager bool           `json:"is_manager"`
}

type UpdateEmployeeRequest struct {
	Balances  map[string]int `json:"leave_balance" validate:"omitempty,dive,gte=0"`
	IsManager *bool          `json:"is_manager"`
}

type EmployeeResponse struct {
	Name      string         `json:"name"`
	IsManager bool           `json:"is_manager"`
	Balances  map[string]int `json:"leave_balance"`
}
