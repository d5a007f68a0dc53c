package discount

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCodeNotYetActive = errors.New("discount code is not yet active")
	ErrCodeExpired      = errors.New("discount code has expired")
	ErrUsageCapReached  = errors.New("discount code usage cap reached")
	ErrCodeInactive     = errors.New("discount code is inactive")
)

// DiscountCode holds an eligibility window and a usage cap. The entity only
// expresses the advisory checks; the consuming increment is a guarded
// conditional update owned by the store, so currentUses here may be stale the
// moment it is read.
type DiscountCode struct {
	id          uuid.UUID
	code        Code
	description string
	percentage  Percentage
	isActive    bool
	startDate   *time.Time
	endDate     *time.Time
	maxUses     *int
	currentUses int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDiscountCode(
	code Code,
	description string,
	percentage Percentage,
	startDate, endDate *time.Time,
	maxUses *int,
) (*DiscountCode, error) {
	if maxUses != nil && *maxUses <= 0 {
		return nil, ErrInvalidMaxUses
	}
	return &DiscountCode{
		id:          uuid.New(),
		code:        code,
		description: description,
		percentage:  percentage,
		isActive:    true,
		startDate:   startDate,
		endDate:     endDate,
		maxUses:     maxUses,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code Code,
	description string,
	percentage Percentage,
	isActive bool,
	startDate, endDate *time.Time,
	maxUses *int,
	currentUses int,
	createdAt, updatedAt time.Time,
) *DiscountCode {
	return &DiscountCode{
		id:          id,
		code:        code,
		description: description,
		percentage:  percentage,
		isActive:    isActive,
		startDate:   startDate,
		endDate:     endDate,
		maxUses:     maxUses,
		currentUses: currentUses,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsEligibleAt checks the window with inclusive bounds on both ends: a code
// becomes usable at exactly startDate and stays usable through exactly endDate.
func (d *DiscountCode) IsEligibleAt(t time.Time) bool {
	if d.startDate != nil && t.Before(*d.startDate) {
		return false
	}
	if d.endDate != nil && t.After(*d.endDate) {
		return false
	}
	return true
}

// ValidateUsage performs the advisory pre-check. A passing result does not
// reserve a use; only the store-side increment does.
func (d *DiscountCode) ValidateUsage(t time.Time) error {
	if !d.isActive {
		return ErrCodeInactive
	}
	if d.startDate != nil && t.Before(*d.startDate) {
		return ErrCodeNotYetActive
	}
	if d.endDate != nil && t.After(*d.endDate) {
		return ErrCodeExpired
	}
	if d.maxUses != nil && d.currentUses >= *d.maxUses {
		return ErrUsageCapReached
	}
	return nil
}

func (d *DiscountCode) ApplyTo(amountCents int64) int64 {
	return d.percentage.ApplyTo(amountCents)
}

func (d *DiscountCode) ID() uuid.UUID         { return d.id }
func (d *DiscountCode) Code() Code            { return d.code }
func (d *DiscountCode) Description() string   { return d.description }
func (d *DiscountCode) Percentage() Percentage { return d.percentage }
func (d *DiscountCode) IsActive() bool        { return d.isActive }
func (d *DiscountCode) StartDate() *time.Time { return d.startDate }
func (d *DiscountCode) EndDate() *time.Time   { return d.endDate }
func (d *DiscountCode) MaxUses() *int         { return d.maxUses }
func (d *DiscountCode) CurrentUses() int      { return d.currentUses }
func (d *DiscountCode) CreatedAt() time.Time  { return d.createdAt }
func (d *DiscountCode) UpdatedAt() time.Time  { return d.updatedAt }
