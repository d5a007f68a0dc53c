package registration

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTermsNotAgreed = errors.New("terms must be agreed")
)

// Registration is the output record of one successful enrollment transaction.
// It is created exactly once and never mutated by this flow; only payment
// flows may move paymentStatus afterwards.
type Registration struct {
	id                 uuid.UUID
	confirmationNumber ConfirmationNumber
	parentID           uuid.UUID
	courseID           uuid.UUID
	child              ChildInfo
	emergencyContact   EmergencyContact
	agreedToTerms      bool
	photoRelease       bool
	discountCodeID     *uuid.UUID
	amountPaid         Money
	paymentStatus      PaymentStatus
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRegistration(
	confirmationNumber ConfirmationNumber,
	parentID, courseID uuid.UUID,
	child ChildInfo,
	emergencyContact EmergencyContact,
	agreedToTerms, photoRelease bool,
	discountCodeID *uuid.UUID,
	amountPaid Money,
) (*Registration, error) {
	if !agreedToTerms {
		return nil, ErrTermsNotAgreed
	}
	return &Registration{
		id:                 uuid.New(),
		confirmationNumber: confirmationNumber,
		parentID:           parentID,
		courseID:           courseID,
		child:              child,
		emergencyContact:   emergencyContact,
		agreedToTerms:      agreedToTerms,
		photoRelease:       photoRelease,
		discountCodeID:     discountCodeID,
		amountPaid:         amountPaid,
		// Payment is confirmed out of band before the submission reaches us.
		paymentStatus: StatusCompleted,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	confirmationNumber ConfirmationNumber,
	parentID, courseID uuid.UUID,
	child ChildInfo,
	emergencyContact EmergencyContact,
	agreedToTerms, photoRelease bool,
	discountCodeID *uuid.UUID,
	amountPaid Money,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Registration {
	return &Registration{
		id:                 id,
		confirmationNumber: confirmationNumber,
		parentID:           parentID,
		courseID:           courseID,
		child:              child,
		emergencyContact:   emergencyContact,
		agreedToTerms:      agreedToTerms,
		photoRelease:       photoRelease,
		discountCodeID:     discountCodeID,
		amountPaid:         amountPaid,
		paymentStatus:      paymentStatus,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (r *Registration) HoldsSeat() bool {
	return r.paymentStatus.HoldsSeat()
}

func (r *Registration) ID() uuid.UUID                          { return r.id }
func (r *Registration) ConfirmationNumber() ConfirmationNumber { return r.confirmationNumber }
func (r *Registration) ParentID() uuid.UUID                    { return r.parentID }
func (r *Registration) CourseID() uuid.UUID                    { return r.courseID }
func (r *Registration) Child() ChildInfo                       { return r.child }
func (r *Registration) EmergencyContact() EmergencyContact     { return r.emergencyContact }
func (r *Registration) AgreedToTerms() bool                    { return r.agreedToTerms }
func (r *Registration) PhotoRelease() bool                     { return r.photoRelease }
func (r *Registration) DiscountCodeID() *uuid.UUID             { return r.discountCodeID }
func (r *Registration) AmountPaid() Money                      { return r.amountPaid }
func (r *Registration) PaymentStatus() PaymentStatus           { return r.paymentStatus }
func (r *Registration) CreatedAt() time.Time                   { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time                   { return r.updatedAt }
