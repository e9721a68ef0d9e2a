// Package validation holds the field rules for items, supermarkets and purchases.
// Every rule is a pure function returning nil on success or an *Error describing
// the violated rule.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/mmynk/supermarket/internal/models"
)

const (
	MaxItemNameLength        = 64
	MaxSupermarketNameLength = 64
	MaxAddressLength         = 128
)

var (
	// ErrInvalidData matches every *Error via errors.Is.
	ErrInvalidData = errors.New("invalid data")

	MinItemPrice = decimal.RequireFromString("0.01")
	MaxItemPrice = decimal.RequireFromString("9999.99")

	phonePattern = regexp.MustCompile(`^08[7-9][0-9]{7}$`)
)

// Error is an InvalidData failure carrying the message of the violated rule.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is makes errors.Is(err, ErrInvalidData) true for any *Error.
func (e *Error) Is(target error) bool { return target == ErrInvalidData }

// Invalid returns an *Error with the given message.
func Invalid(msg string) error {
	return &Error{Message: msg}
}

// First returns the first non-nil error, so several rules can be checked
// before anything is applied.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ItemName requires a name of at most 64 characters.
func ItemName(name *string) error {
	if name == nil {
		return Invalid("name is required!")
	}
	if utf8.RuneCountInString(*name) > MaxItemNameLength {
		return Invalid("name exceeds max length of 64!")
	}
	return nil
}

// ItemPrice requires 0.01 <= price <= 9999.99.
func ItemPrice(price *decimal.Decimal) error {
	if price == nil {
		return Invalid("price is required!")
	}
	if price.LessThan(MinItemPrice) || price.GreaterThan(MaxItemPrice) {
		return Invalid("price should be between 0.01 and 9999.99!")
	}
	return nil
}

// ItemType requires an exact, case-sensitive match of a known type tag.
func ItemType(t *models.ItemType) error {
	if t != nil {
		for _, known := range models.ItemTypes {
			if *t == known {
				return nil
			}
		}
	}
	return Invalid("Invalid product type! Valid are FOOD, TECHNOLOGY, HOUSEHOLD, DRINKS")
}

// SupermarketName requires a name of at most 64 characters.
func SupermarketName(name *string) error {
	if name == nil {
		return Invalid("Name is required!")
	}
	if utf8.RuneCountInString(*name) > MaxSupermarketNameLength {
		return Invalid("Name exceeds max length of 64!")
	}
	return nil
}

// SupermarketAddress requires an address of at most 128 characters.
func SupermarketAddress(address *string) error {
	if address == nil {
		return Invalid("Address is required!")
	}
	if utf8.RuneCountInString(*address) > MaxAddressLength {
		return Invalid("Address exceeds max length of 128!")
	}
	return nil
}

// PhoneNumber requires "08", one of 7, 8 or 9, then seven digits.
func PhoneNumber(phone *string) error {
	if phone == nil || !phonePattern.MatchString(*phone) {
		return Invalid("Phone number is invalid!")
	}
	return nil
}

// WorkingHours requires "HH:MM-HH:MM" in 24-hour time with the opening
// time strictly before the closing time.
func WorkingHours(hours *string) error {
	if hours == nil {
		return Invalid("Working hours are invalid!")
	}
	opening, closing, ok := strings.Cut(strings.TrimSpace(*hours), "-")
	if !ok {
		return Invalid("Working hours are invalid!")
	}
	openAt, err := parseClock(opening)
	if err != nil {
		return Invalid("Working hours are invalid!")
	}
	closeAt, err := parseClock(closing)
	if err != nil {
		return Invalid("Working hours are invalid!")
	}
	if !openAt.Before(closeAt) {
		return Invalid("Working hours are invalid!")
	}
	return nil
}

func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != len("15:04") {
		return time.Time{}, errors.New("bad clock")
	}
	return time.Parse("15:04", s)
}

// PaymentType matches CASH or CARD ignoring case and returns the canonical tag.
func PaymentType(s *string) (models.PaymentType, error) {
	if s != nil {
		switch models.PaymentType(strings.ToUpper(*s)) {
		case models.PaymentTypeCash:
			return models.PaymentTypeCash, nil
		case models.PaymentTypeCard:
			return models.PaymentTypeCard, nil
		}
	}
	return "", Invalid("Invalid type of payment! Valid values are CARD and CASH")
}

// CashAmount requires a cash amount when paying with cash.
func CashAmount(paymentType models.PaymentType, cash *decimal.Decimal) error {
	if paymentType == models.PaymentTypeCash && cash == nil {
		return Invalid("Cash amount cannot be null when paying with cash!")
	}
	return nil
}

// PaymentDate parses an optional "YYYY-MM-DD" date. A nil input yields nil.
func PaymentDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, *s)
	if err != nil {
		return nil, Invalid("Time of payment is invalid! Expected YYYY-MM-DD")
	}
	return &t, nil
}
