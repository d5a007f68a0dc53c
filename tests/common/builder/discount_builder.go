//go:build unit || e2e

package builder

import (
	"time"

	"enrollhub/internal/domain/discount"

	"github.com/google/uuid"
)

type DiscountBuilder struct {
	ID          uuid.UUID
	Code        string
	Description string
	Percentage  float64
	IsActive    bool
	StartDate   *time.Time
	EndDate     *time.Time
	MaxUses     *int
	CurrentUses int
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		ID:          uuid.New(),
		Code:        "SUMMER25",
		Description: "Summer promotion",
		Percentage:  25,
		IsActive:    true,
	}
}

func (b *DiscountBuilder) WithWindow(start, end time.Time) *DiscountBuilder {
	b.StartDate = &start
	b.EndDate = &end
	return b
}

func (b *DiscountBuilder) WithMaxUses(maxUses, currentUses int) *DiscountBuilder {
	b.MaxUses = &maxUses
	b.CurrentUses = currentUses
	return b
}

func (b *DiscountBuilder) Inactive() *DiscountBuilder {
	b.IsActive = false
	return b
}

func (b *DiscountBuilder) BuildDomain() *discount.DiscountCode {
	code, err := discount.NewCode(b.Code)
	if err != nil {
		panic(err)
	}
	percentage, err := discount.NewPercentage(b.Percentage)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return discount.Reconstruct(
		b.ID, code, b.Description, percentage, b.IsActive,
		b.StartDate, b.EndDate, b.MaxUses, b.CurrentUses, now, now,
	)
}
