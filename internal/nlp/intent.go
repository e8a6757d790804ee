package nlp

// Intent is the action a free-text utterance asks for.
type Intent string

const (
	IntentRequestLeave Intent = "request_leave"
	IntentCancelLeave  Intent = "cancel_leave"
	IntentCheckBalance Intent = "check_balance"
	IntentViewHistory  Intent = "view_history"
	IntentApproveLeave Intent = "approve_leave"
	IntentUnknown      Intent = "unknown"
)

// Entities are the values extracted alongside an intent. All fields are
// raw strings; absence is the empty string. NumDays stays textual so the
// ledger can distinguish "missing" from "not a number".
type Entities struct {
	LeaveType    string `json:"leave_type,omitempty"`
	NumDays      string `json:"num_days,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}
