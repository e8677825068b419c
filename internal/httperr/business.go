package httperr

import "errors"

// Workflow rejection codes carried through the usecases.
const (
	CodeInvalidAttribute    = "invalid_attribute"
	CodeMissingSchedule     = "missing_schedule"
	CodeNotLead             = "not_lead"
	CodeChecklistIncomplete = "checklist_incomplete"
	CodeIllegalTransition   = "illegal_transition"
	CodeInsufficientPoints  = "insufficient_points"
	CodeInvoicePaid         = "invoice_paid"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code when err is a business rejection.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
