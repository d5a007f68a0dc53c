package registration

import (
	"enrollhub/internal/domain/course"
	"enrollhub/internal/domain/discount"
	"enrollhub/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory assembles a Registration from the already-admitted submission parts.
// Capacity admission and the discount-consume increment are storage concerns;
// the factory re-runs only the pure checks so an entity can never be built in
// an invalid state.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

type Submission struct {
	Child            ChildInfo
	EmergencyContact EmergencyContact
	AgreedToTerms    bool
	PhotoRelease     bool
	AmountPaid       Money
}

func (f *Factory) CreateRegistration(
	confirmationNumber ConfirmationNumber,
	parentID uuid.UUID,
	courseEntity *course.Course,
	discountEntity *discount.DiscountCode,
	sub Submission,
) (*Registration, error) {
	now := f.Clock.Now()

	if courseEntity.HasStarted(now) {
		return nil, course.ErrAlreadyStarted
	}

	var discountCodeID *uuid.UUID
	if discountEntity != nil {
		if err := discountEntity.ValidateUsage(now); err != nil {
			return nil, err
		}
		id := discountEntity.ID()
		discountCodeID = &id
	}

	return NewRegistration(
		confirmationNumber,
		parentID,
		courseEntity.ID(),
		sub.Child,
		sub.EmergencyContact,
		sub.AgreedToTerms,
		sub.PhotoRelease,
		discountCodeID,
		sub.AmountPaid,
	)
}
