package registration

import "errors"

var ErrInvalidStatus = errors.New("invalid payment status")

// PaymentStatus drives committed-seat accounting: pending and completed hold a
// seat, cancelled releases it.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusCancelled PaymentStatus = "cancelled"
)

func NewPaymentStatus(value string) (PaymentStatus, error) {
	status := PaymentStatus(value)
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

// HoldsSeat reports whether a registration in this status counts toward
// committed seats.
func (s PaymentStatus) HoldsSeat() bool {
	return s == StatusPending || s == StatusCompleted
}
