package reminder

import "errors"

var ErrParseStatus = errors.New("invalid status")

type Status struct {
	v string
}

func (s Status) String() string {
	return s.v
}

func ParseStatus(value string) (Status, error) {
	switch value {
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	case "snoozed":
		return StatusSnoozed, nil
	default:
		return StatusUnknown, ErrParseStatus
	}
}

var (
	StatusUnknown   = Status{}
	StatusPending   = Status{v: "pending"}
	StatusCompleted = Status{v: "completed"}
	StatusCancelled = Status{v: "cancelled"}
	StatusSnoozed   = Status{v: "snoozed"}
)
