package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/pricing"
)

func seedBooking(f *fakeRepo, status domain.Status, crew []uint) *models.Booking {
	return f.addBooking(&models.Booking{Status: string(status)}, crew)
}

func TestCreateBookingStoresQuote(t *testing.T) {
	f := newFakeRepo()
	uc := NewCreateBooking(f, pricing.DefaultConfig(), nil)

	b, err := uc.Execute(context.Background(), CreateInput{
		ClientName:  "Jana Novakova",
		ClientPhone: "+420777123456",
		Category:    pricing.CategoryHome,
		Home: &pricing.HomeInput{
			AreaM2:    50,
			Bathrooms: 1,
			Kitchens:  1,
			Dirtiness: pricing.DirtinessMedium,
			Frequency: pricing.FrequencyOneOff,
		},
		Crew: []uint{3, 4},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if b.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want pending", b.Status)
	}
	if b.Reference == "" {
		t.Error("expected a public reference")
	}

	details, err := models.DecodeBookingDetails(b.Details)
	if err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if details.QuoteMin != 1305 || details.QuoteMax != 1595 {
		t.Errorf("stored quote = {%.0f, %.0f}, want {1305, 1595}", details.QuoteMin, details.QuoteMax)
	}
}

func TestCreateBookingPersistsServiceAttributes(t *testing.T) {
	f := newFakeRepo()
	uc := NewCreateBooking(f, pricing.DefaultConfig(), nil)

	in := pricing.HomeInput{
		AreaM2:    50,
		Bathrooms: 1,
		Kitchens:  1,
		Dirtiness: pricing.DirtinessMedium,
		Frequency: pricing.FrequencyOneOff,
	}
	b, err := uc.Execute(context.Background(), CreateInput{
		ClientName:  "Jana Novakova",
		ClientPhone: "+420777123456",
		Category:    pricing.CategoryHome,
		Home:        &in,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	details, err := models.DecodeBookingDetails(b.Details)
	if err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if len(details.Attributes) == 0 {
		t.Fatal("service attributes not stored in the detail blob")
	}

	var stored pricing.HomeInput
	if err := json.Unmarshal(details.Attributes, &stored); err != nil {
		t.Fatalf("unmarshal attributes: %v", err)
	}
	if stored != in {
		t.Errorf("attributes round-trip = %+v, want %+v", stored, in)
	}
}

func TestCreateBookingRejectsBadAttributes(t *testing.T) {
	f := newFakeRepo()
	uc := NewCreateBooking(f, pricing.DefaultConfig(), nil)

	_, err := uc.Execute(context.Background(), CreateInput{
		ClientName:  "Jana",
		ClientPhone: "123",
		Category:    pricing.CategoryHome,
		Home: &pricing.HomeInput{
			AreaM2:    10,
			Dirtiness: "filthy",
			Frequency: pricing.FrequencyOneOff,
		},
	})
	if err == nil {
		t.Fatal("expected calculator rejection")
	}
	if len(f.bookings) != 0 {
		t.Error("booking persisted despite invalid attributes")
	}
}

func TestCreateBookingAllowsPriceOutsideQuote(t *testing.T) {
	f := newFakeRepo()
	uc := NewCreateBooking(f, pricing.DefaultConfig(), nil)

	// Operator discretion: override may leave the quoted range.
	price := 9999.0
	b, err := uc.Execute(context.Background(), CreateInput{
		ClientName:  "Jana",
		ClientPhone: "123",
		Category:    pricing.CategoryWindow,
		Window: &pricing.WindowInput{
			AreaM2:     10,
			Dirtiness:  pricing.DirtinessLow,
			ObjectType: pricing.ObjectResidential,
		},
		Price: &price,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	details, _ := models.DecodeBookingDetails(b.Details)
	if details.Price == nil || *details.Price != 9999 {
		t.Errorf("price override lost: %v", details.Price)
	}
}

func TestApproveBookingRequiresSchedule(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusPending, nil)
	uc := NewApproveBooking(f, nil)

	_, err := uc.Execute(context.Background(), 1, b.ID, nil)
	if !httperr.IsBusiness(err, httperr.CodeMissingSchedule) {
		t.Fatalf("expected missing_schedule, got %v", err)
	}

	stored, _ := f.GetBooking(context.Background(), b.ID)
	if stored.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want pending left unchanged", stored.Status)
	}
}

func TestApproveBooking(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusPending, nil)
	uc := NewApproveBooking(f, nil)

	when := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	updated, err := uc.Execute(context.Background(), 1, b.ID, &when)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != string(domain.StatusApproved) {
		t.Errorf("status = %s, want approved", updated.Status)
	}
	if updated.ScheduledAt == nil || !updated.ScheduledAt.Equal(when) {
		t.Errorf("scheduled_at = %v, want %v", updated.ScheduledAt, when)
	}
}

// Web intake creates bookings without a crew; until an operator assigns
// one, nobody can start the job.
func TestAssignCrewMakesWebIntakeStartable(t *testing.T) {
	f := newFakeRepo()
	create := NewCreateBooking(f, pricing.DefaultConfig(), nil)
	approve := NewApproveBooking(f, nil)
	assign := NewAssignCrew(f, nil)
	start := NewStartBooking(f, nil)

	b, err := create.Execute(context.Background(), CreateInput{
		ClientName:  "Jana Novakova",
		ClientPhone: "+420777123456",
		Category:    pricing.CategoryWindow,
		Window: &pricing.WindowInput{
			AreaM2:     10,
			Dirtiness:  pricing.DirtinessLow,
			ObjectType: pricing.ObjectResidential,
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	when := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	if _, err := approve.Execute(context.Background(), 1, b.ID, &when); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if _, err := start.Execute(context.Background(), 5, b.ID); !httperr.IsBusiness(err, httperr.CodeNotLead) {
		t.Fatalf("unstaffed booking must reject start, got %v", err)
	}

	if _, err := assign.Execute(context.Background(), 1, b.ID, []uint{5, 6}, nil); err != nil {
		t.Fatalf("assign: %v", err)
	}

	if _, err := start.Execute(context.Background(), 6, b.ID); !httperr.IsBusiness(err, httperr.CodeNotLead) {
		t.Fatalf("second crew member must not lead, got %v", err)
	}
	if _, err := start.Execute(context.Background(), 5, b.ID); err != nil {
		t.Fatalf("lead start after assignment: %v", err)
	}
}

func TestAssignCrewLeadMustBeInCrew(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusPending, nil)
	uc := NewAssignCrew(f, nil)

	lead := uint(9)
	if _, err := uc.Execute(context.Background(), 1, b.ID, []uint{5, 6}, &lead); !httperr.IsBusiness(err, httperr.CodeInvalidAttribute) {
		t.Fatalf("expected invalid_attribute for an outside lead, got %v", err)
	}

	lead = 6
	updated, err := uc.Execute(context.Background(), 1, b.ID, []uint{5, 6}, &lead)
	if err != nil {
		t.Fatalf("assign with override: %v", err)
	}
	if updated.LeadCleanerID == nil || *updated.LeadCleanerID != 6 {
		t.Errorf("lead override = %v, want 6", updated.LeadCleanerID)
	}
}

func TestAssignCrewRejectsClosedBooking(t *testing.T) {
	f := newFakeRepo()
	uc := NewAssignCrew(f, nil)

	for _, status := range []domain.Status{domain.StatusCompleted, domain.StatusCancelled} {
		b := seedBooking(f, status, []uint{5})
		if _, err := uc.Execute(context.Background(), 1, b.ID, []uint{7}, nil); !httperr.IsBusiness(err, httperr.CodeIllegalTransition) {
			t.Errorf("%s booking: expected illegal_transition, got %v", status, err)
		}
	}

	b := seedBooking(f, domain.StatusPending, nil)
	if _, err := uc.Execute(context.Background(), 1, b.ID, nil, nil); !httperr.IsBusiness(err, httperr.CodeInvalidAttribute) {
		t.Errorf("empty crew: expected invalid_attribute, got %v", err)
	}
}

func TestStartBookingOnlyLead(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusApproved, []uint{5, 6})
	uc := NewStartBooking(f, nil)

	if _, err := uc.Execute(context.Background(), 6, b.ID); !httperr.IsBusiness(err, httperr.CodeNotLead) {
		t.Fatalf("expected not_lead, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), 5, b.ID); err != nil {
		t.Fatalf("lead start: %v", err)
	}
}

func TestStartBookingTwiceKeepsStartedAt(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusApproved, []uint{5})
	uc := NewStartBooking(f, nil)

	first, err := uc.Execute(context.Background(), 5, b.ID)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	firstStarted := *first.StartedAt

	time.Sleep(5 * time.Millisecond)

	second, err := uc.Execute(context.Background(), 5, b.ID)
	if err != nil {
		t.Fatalf("second start must be a no-op: %v", err)
	}
	if !second.StartedAt.Equal(firstStarted) {
		t.Errorf("started_at changed: %v -> %v", firstStarted, second.StartedAt)
	}

	stored, _ := f.GetBooking(context.Background(), b.ID)
	if !stored.StartedAt.Equal(firstStarted) {
		t.Errorf("persisted started_at changed: %v", stored.StartedAt)
	}
}

func TestStartBookingLeadOverride(t *testing.T) {
	f := newFakeRepo()
	override := uint(6)
	b := f.addBooking(&models.Booking{
		Status:        string(domain.StatusApproved),
		LeadCleanerID: &override,
	}, []uint{5, 6})
	uc := NewStartBooking(f, nil)

	if _, err := uc.Execute(context.Background(), 5, b.ID); !httperr.IsBusiness(err, httperr.CodeNotLead) {
		t.Fatalf("first crew member must lose to override, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), 6, b.ID); err != nil {
		t.Fatalf("override lead start: %v", err)
	}
}

func TestCompleteBookingChecklistGate(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusInProgress, []uint{5})
	uc := NewCompleteBooking(f, nil)

	if _, err := uc.Execute(context.Background(), 5, b.ID); !httperr.IsBusiness(err, httperr.CodeChecklistIncomplete) {
		t.Fatalf("expected checklist_incomplete, got %v", err)
	}

	f.checklistDone[b.ID] = true
	updated, err := uc.Execute(context.Background(), 5, b.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if updated.Status != string(domain.StatusCompleted) || updated.CompletedAt == nil {
		t.Errorf("complete left %s / %v", updated.Status, updated.CompletedAt)
	}
}

func TestCompleteBookingNonLeadRegardlessOfChecklist(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusInProgress, []uint{5, 6})
	f.checklistDone[b.ID] = true
	uc := NewCompleteBooking(f, nil)

	if _, err := uc.Execute(context.Background(), 6, b.ID); !httperr.IsBusiness(err, httperr.CodeNotLead) {
		t.Fatalf("expected not_lead, got %v", err)
	}
}

func TestCompleteBookingIdempotentWrite(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusInProgress, []uint{5})
	f.checklistDone[b.ID] = true
	uc := NewCompleteBooking(f, nil)

	if _, err := uc.Execute(context.Background(), 5, b.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	writes := f.updates

	if _, err := uc.Execute(context.Background(), 5, b.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if f.updates != writes {
		t.Error("no-op complete issued a write")
	}
}

func TestDeleteBookingRefusesPaidInvoice(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusCompleted, nil)
	f.paidInvoice[b.ID] = true
	uc := NewDeleteBooking(f, nil)

	if err := uc.Execute(context.Background(), 1, b.ID); !httperr.IsBusiness(err, httperr.CodeInvoicePaid) {
		t.Fatalf("expected invoice_paid refusal, got %v", err)
	}
	if _, err := f.GetBooking(context.Background(), b.ID); err != nil {
		t.Error("booking deleted despite paid invoice")
	}
}

func TestDeleteBooking(t *testing.T) {
	f := newFakeRepo()
	b := seedBooking(f, domain.StatusCancelled, nil)
	uc := NewDeleteBooking(f, nil)

	if err := uc.Execute(context.Background(), 1, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.GetBooking(context.Background(), b.ID); err == nil {
		t.Error("booking still present after delete")
	}
}
