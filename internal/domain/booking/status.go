package booking

import "github.com/SparkleCleanOps/cleaning-ops/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ===============================
// Transition rules
// ===============================

// Status never moves backward; the repeated-start and repeated-complete
// cases are handled as no-ops by the domain actions, not here.

func CanApprove(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusApproved {
		return httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}
	return nil
}

func CanStart(current Status) error {
	if current != StatusApproved {
		return httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusInProgress {
		return httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
