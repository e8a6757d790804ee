package store

// Document is the whole persisted state. It is read once at startup and
// written back wholesale after every mutation.
type Document struct {
	Employees map[string]*Employee `json:"employees"`
	Holidays  []string             `json:"holidays"`
	Admins    []string             `json:"admins,omitempty"`
}

type Employee struct {
	IsManager    bool           `json:"is_manager"`
	LeaveBalance map[string]int `json:"leave_balance"`
	LeaveHistory []LeaveRequest `json:"leave_history"`
}

// LeaveRequest is one history entry. Insertion order is creation order.
type LeaveRequest struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Days        int    `json:"days"`
	StartDate   string `json:"start_date"`
	Status      string `json:"status"`
	RequestedOn string `json:"requested_on"`
}

func newDocument() *Document {
	return &Document{
		Employees: map[string]*Employee{},
		Holidays:  []string{},
	}
}
