package checkout

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Input carries the contact, shipping, and payment fields posted at
// checkout.
type Input struct {
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone_number" validate:"required"`
	RecipientName string `json:"recipient_name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	Postcode      string `json:"postcode" validate:"required"`
	CardNumber    string `json:"card_number" validate:"required"`
	ExpDate       string `json:"exp_date" validate:"required"`
	CVV           string `json:"cvv" validate:"required"`
}

// Result reports the committed order back to the caller.
type Result struct {
	OrderID uuid.UUID       `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

type fieldError struct {
	field string
}

func (f fieldError) Error() string {
	return f.field + " is required"
}

// validate aggregates every blank required field so the client can re-prompt
// once instead of field by field.
func (in Input) validate() (map[string]string, error) {
	var err error
	fields := map[string]string{}

	required := []struct {
		name  string
		value string
	}{
		{"email", in.Email},
		{"phone_number", in.Phone},
		{"recipient_name", in.RecipientName},
		{"address", in.Address},
		{"city", in.City},
		{"state", in.State},
		{"postcode", in.Postcode},
		{"card_number", in.CardNumber},
		{"exp_date", in.ExpDate},
		{"cvv", in.CVV},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			fields[field.name] = "is required"
			err = multierr.Append(err, fieldError{field: field.name})
		}
	}
	return fields, err
}

// cardLastFour strips the capture down to what persistence may keep.
func cardLastFour(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
