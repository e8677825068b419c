package models

import "encoding/json"

// BookingDetails is the structured payload serialized into Booking.Details.
type BookingDetails struct {
	Category   string          `json:"category"`
	Attributes json.RawMessage `json:"attributes,omitempty"`

	QuoteMin float64 `json:"quote_min"`
	QuoteMax float64 `json:"quote_max"`

	// Operator-overridden price. Any non-negative value is allowed, it is
	// not constrained to the quoted range.
	Price *float64 `json:"price,omitempty"`

	Notes string `json:"notes,omitempty"`
}

func (d BookingDetails) Encode() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeBookingDetails(raw string) (BookingDetails, error) {
	var d BookingDetails
	if raw == "" {
		return d, nil
	}
	err := json.Unmarshal([]byte(raw), &d)
	return d, err
}
