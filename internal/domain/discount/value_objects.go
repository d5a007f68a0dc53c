package discount

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode    = errors.New("invalid discount code format")
	ErrInvalidPercent = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidMaxUses = errors.New("max uses must be a positive integer")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Percentage is the discount applied to the course fee, 0 < p <= 100.
type Percentage float64

func NewPercentage(value float64) (Percentage, error) {
	if value <= 0 || value > 100 {
		return 0, ErrInvalidPercent
	}
	return Percentage(value), nil
}

func (p Percentage) Value() float64 {
	return float64(p)
}

// ApplyTo returns the amount in cents after the discount.
func (p Percentage) ApplyTo(amountCents int64) int64 {
	discounted := int64(float64(amountCents) * (100.0 - float64(p)) / 100.0)
	if discounted < 0 {
		return 0
	}
	return discounted
}
