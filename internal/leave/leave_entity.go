package leave

// Canonical leave types. Adding a new type here is the only change needed:
// the classifier, balance prompts and consoles all key off this list.
const (
	TypeSick      = "Sick Leave"
	TypeAnnual    = "Annual Leave"
	TypeMaternity = "Maternity Leave"
)

// Request status values. Pending is the only initial status.
// Pending -> Approved (no balance change), Pending -> Denied (refund),
// Pending|Approved -> Cancelled (refund). Nothing else.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusDenied    = "Denied"
	StatusCancelled = "Cancelled"
)

type TypeKeyword struct {
	Keyword   string
	Canonical string
}

// TypeKeywords maps utterance keywords to canonical leave types, in match
// priority order.
var TypeKeywords = []TypeKeyword{
	{Keyword: "sick", Canonical: TypeSick},
	{Keyword: "annual", Canonical: TypeAnnual},
	{Keyword: "maternity", Canonical: TypeMaternity},
}

// Types returns the canonical leave types in display order.
func Types() []string {
	return []string{TypeSick, TypeAnnual, TypeMaternity}
}
