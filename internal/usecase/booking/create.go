package booking

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SparkleCleanOps/cleaning-ops/internal/audit"
	domain "github.com/SparkleCleanOps/cleaning-ops/internal/domain/booking"
	"github.com/SparkleCleanOps/cleaning-ops/internal/httperr"
	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
	"github.com/SparkleCleanOps/cleaning-ops/internal/pricing"
)

var ErrMissingClient = errors.New("missing client name or phone")

type CreateBooking struct {
	repo       domain.Repository
	pricingCfg pricing.Config
	audit      *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	pricingCfg pricing.Config,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		pricingCfg: pricingCfg,
		audit:      audit,
	}
}

type CreateInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	Category   pricing.Category
	Home       *pricing.HomeInput
	Office     *pricing.OfficeInput
	Window     *pricing.WindowInput
	Upholstery *pricing.UpholsteryInput

	// Operator intake may approve directly when a schedule is known;
	// web intake always lands as pending.
	ScheduledAt *time.Time
	Approve     bool

	Crew          []uint
	LeadCleanerID *uint

	// Operator price override; any non-negative value is accepted.
	Price *float64

	Notes string
}

// attributes returns the category-specific input; quote has already
// rejected a nil one for the selected category.
func (in CreateInput) attributes() any {
	switch in.Category {
	case pricing.CategoryHome:
		return in.Home
	case pricing.CategoryOffice:
		return in.Office
	case pricing.CategoryWindow:
		return in.Window
	case pricing.CategoryUpholstery:
		return in.Upholstery
	}
	return nil
}

// quote runs the calculator for the requested category.
func (uc *CreateBooking) quote(in CreateInput) (pricing.Quote, error) {
	switch in.Category {
	case pricing.CategoryHome:
		if in.Home == nil {
			return pricing.Quote{}, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
		}
		return pricing.CalculateHome(uc.pricingCfg, *in.Home)
	case pricing.CategoryOffice:
		if in.Office == nil {
			return pricing.Quote{}, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
		}
		return pricing.CalculateOffice(uc.pricingCfg, *in.Office)
	case pricing.CategoryWindow:
		if in.Window == nil {
			return pricing.Quote{}, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
		}
		res, err := pricing.CalculateWindow(uc.pricingCfg, *in.Window)
		return res.Quote, err
	case pricing.CategoryUpholstery:
		if in.Upholstery == nil {
			return pricing.Quote{}, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
		}
		return pricing.CalculateUpholstery(uc.pricingCfg, *in.Upholstery)
	default:
		return pricing.Quote{}, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	name := strings.TrimSpace(in.ClientName)
	phone := strings.TrimSpace(in.ClientPhone)
	if name == "" || phone == "" {
		return nil, ErrMissingClient
	}

	if in.Price != nil && *in.Price < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAttribute)
	}

	q, err := uc.quote(in)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetOrCreateClient(ctx, name, phone, strings.TrimSpace(in.ClientEmail))
	if err != nil {
		return nil, err
	}

	attrs, err := json.Marshal(in.attributes())
	if err != nil {
		return nil, err
	}

	details := models.BookingDetails{
		Category:   string(in.Category),
		Attributes: attrs,
		QuoteMin:   q.Min,
		QuoteMax:   q.Max,
		Price:      in.Price,
		Notes:      in.Notes,
	}
	encoded, err := details.Encode()
	if err != nil {
		return nil, err
	}

	b := models.Booking{
		Reference:     uuid.NewString(),
		ClientID:      client.ID,
		Status:        string(domain.InitialStatus()),
		LeadCleanerID: in.LeadCleanerID,
		Details:       encoded,
		Notes:         in.Notes,
	}

	if in.Approve {
		if err := domain.Approve(&b, in.ScheduledAt); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.CreateBooking(ctx, &b, in.Crew); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"category":  in.Category,
			"quote_min": q.Min,
			"quote_max": q.Max,
		},
	})

	return &b, nil
}
