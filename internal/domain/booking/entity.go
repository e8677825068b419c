package booking

import (
	"time"

	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// LeadID resolves the lead cleaner: explicit override wins, otherwise the
// first member of the ordered crew. Zero means no lead is assigned.
func LeadID(b *models.Booking, crew []uint) uint {
	if b.LeadCleanerID != nil {
		return *b.LeadCleanerID
	}
	if len(crew) > 0 {
		return crew[0]
	}
	return 0
}

// Approve moves a pending booking to approved. The concrete schedule is
// part of the transition; without it the approval is rejected.
func Approve(b *models.Booking, scheduledAt *time.Time) error {
	if scheduledAt == nil || scheduledAt.IsZero() {
		return httperr.ErrBusiness(httperr.CodeMissingSchedule)
	}
	if err := CanApprove(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusApproved)
	b.ScheduledAt = scheduledAt
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Start moves an approved booking to in_progress. Only the lead may start.
// Starting an already-started booking is a no-op that must not touch
// StartedAt; the bool reports whether this call changed anything.
func Start(b *models.Booking, crew []uint, actorID uint, now time.Time) (bool, error) {
	if actorID == 0 || actorID != LeadID(b, crew) {
		return false, httperr.ErrBusiness(httperr.CodeNotLead)
	}

	if Status(b.Status) == StatusInProgress && b.StartedAt != nil {
		return false, nil
	}

	if err := CanStart(Status(b.Status)); err != nil {
		return false, err
	}

	b.Status = string(StatusInProgress)
	if b.StartedAt == nil {
		b.StartedAt = &now
	}
	return true, nil
}

// Complete moves an in_progress booking to completed, gated on the room
// checklist. Same lead rule and no-op semantics as Start. The transition
// edge (return value true) is the once-only completion event invoicing
// keys off.
func Complete(b *models.Booking, crew []uint, actorID uint, checklistDone bool, now time.Time) (bool, error) {
	if actorID == 0 || actorID != LeadID(b, crew) {
		return false, httperr.ErrBusiness(httperr.CodeNotLead)
	}

	if Status(b.Status) == StatusCompleted && b.CompletedAt != nil {
		return false, nil
	}

	if err := CanComplete(Status(b.Status)); err != nil {
		return false, err
	}

	if !checklistDone {
		return false, httperr.ErrBusiness(httperr.CodeChecklistIncomplete)
	}

	b.Status = string(StatusCompleted)
	if b.CompletedAt == nil {
		b.CompletedAt = &now
	}
	return true, nil
}
