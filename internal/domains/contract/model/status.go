package model

type Status string

const (
	StatusDraft      Status = "draft"
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusDraft, StatusPending, StatusActive, StatusExpired, StatusTerminated, StatusCancelled}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusActive, StatusExpired, StatusTerminated, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusExpired || s == StatusTerminated || s == StatusCancelled
}
