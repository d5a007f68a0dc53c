package queries

import (
	"context"
	"errors"

	"enrollhub/internal/domain/discount"
	"enrollhub/internal/infra"
	"enrollhub/internal/pkg/clock"
	"enrollhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type DiscountView struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"code"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discount_percentage"`
}

type DiscountReadStore interface {
	FindByCode(ctx context.Context, code string) (*discount.DiscountCode, error)
}

type DiscountQueries interface {
	// Validate runs the advisory eligibility check without consuming a use.
	Validate(ctx context.Context, code string) (*DiscountView, error)
}

type discountQueriesImpl struct {
	store DiscountReadStore
	clock clock.Clock
}

func NewDiscountQueries(store DiscountReadStore, clock clock.Clock) DiscountQueries {
	return &discountQueriesImpl{store: store, clock: clock}
}

func (q *discountQueriesImpl) Validate(ctx context.Context, code string) (*DiscountView, error) {
	entity, err := q.store.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDiscountNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.ValidateUsage(q.clock.Now()); err != nil {
		return nil, MarkDiscountRejection(err)
	}

	return &DiscountView{
		ID:                 entity.ID(),
		Code:               entity.Code().String(),
		Description:        entity.Description(),
		DiscountPercentage: entity.Percentage().Value(),
	}, nil
}

// MarkDiscountRejection maps domain discount rejections onto the usecase
// sentinels handlers switch on.
func MarkDiscountRejection(err error) error {
	switch {
	case errors.Is(err, discount.ErrCodeInactive):
		// Inactive codes are indistinguishable from absent ones to callers.
		return errs.Mark(err, errs.ErrDiscountNotFound)
	case errors.Is(err, discount.ErrCodeNotYetActive):
		return errs.Mark(err, errs.ErrDiscountNotYetActive)
	case errors.Is(err, discount.ErrCodeExpired):
		return errs.Mark(err, errs.ErrDiscountExpired)
	case errors.Is(err, discount.ErrUsageCapReached):
		return errs.Mark(err, errs.ErrDiscountCapReached)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
