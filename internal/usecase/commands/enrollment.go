package commands

import (
	"context"
	"time"

	"enrollhub/internal/domain/account"
	"enrollhub/internal/domain/course"
	"enrollhub/internal/domain/discount"
	"enrollhub/internal/domain/registration"
	"enrollhub/internal/infra"
	"enrollhub/internal/pkg/clock"
	"enrollhub/internal/pkg/config"
	"enrollhub/internal/pkg/errs"
	"enrollhub/internal/usecase/queries"
	"enrollhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type EnrollmentInput struct {
	ParentEmail   string
	ParentProfile account.Profile

	CourseID uuid.UUID

	ChildFirstName    string
	ChildLastName     string
	ChildDateOfBirth  time.Time
	ChildGradeLevel   string
	ChildAllergies    *string
	ChildSpecialNeeds *string

	ContactName         string
	ContactRelationship string
	ContactPhone        string

	AgreedToTerms bool
	PhotoRelease  bool

	DiscountCode *string

	AmountPaidCents int64
}

type EnrollmentResult struct {
	ConfirmationNumber string
	RegistrationID     uuid.UUID
	CourseID           uuid.UUID
	ParentEmail        string
}

type EnrollmentCommands interface {
	CreateRegistration(ctx context.Context, input EnrollmentInput) (*EnrollmentResult, error)
}

type enrollmentUseCaseImpl struct {
	uow                 shared.UnitOfWork
	registrationFactory *registration.Factory
	registrationQueries queries.RegistrationQueries
	clock               clock.Clock
	cfg                 config.EnrollmentConfig
}

func NewEnrollmentCommands(
	uow shared.UnitOfWork,
	registrationFactory *registration.Factory,
	registrationQueries queries.RegistrationQueries,
	clock clock.Clock,
	cfg config.Config,
) EnrollmentCommands {
	return &enrollmentUseCaseImpl{
		uow:                 uow,
		registrationFactory: registrationFactory,
		registrationQueries: registrationQueries,
		clock:               clock,
		cfg:                 cfg.Enrollment,
	}
}

// CreateRegistration runs the enrollment transaction: resolve the parent,
// admit against capacity, consume the discount, mint a confirmation number
// and persist the registration as one commit. Any failure after the discount
// consume rolls the increment back with the rest of the transaction, so a
// consumed-but-unused discount use cannot exist.
func (u *enrollmentUseCaseImpl) CreateRegistration(ctx context.Context, input EnrollmentInput) (*EnrollmentResult, error) {
	// Rejected before the transaction: no account, no seat, no discount use.
	if !input.AgreedToTerms {
		return nil, errs.ErrTermsNotAgreed
	}

	sub, email, err := u.buildSubmission(input)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var registrationID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		parentID, err := u.resolveParent(ctx, tx, email, input.ParentProfile)
		if err != nil {
			return err
		}

		courseEntity, err := u.admitToCourse(ctx, tx, input.CourseID)
		if err != nil {
			return err
		}

		discountEntity, err := u.applyDiscount(ctx, tx, input.DiscountCode)
		if err != nil {
			return err
		}

		registrationID, err = u.mintAndPersist(ctx, tx, parentID, courseEntity, discountEntity, sub)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: the committed view is the response payload.
	view, err := u.registrationQueries.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	return &EnrollmentResult{
		ConfirmationNumber: view.ConfirmationNumber,
		RegistrationID:     view.ID,
		CourseID:           view.CourseID,
		ParentEmail:        view.ParentEmail,
	}, nil
}

func (u *enrollmentUseCaseImpl) buildSubmission(input EnrollmentInput) (registration.Submission, account.Email, error) {
	email, err := account.NewEmail(input.ParentEmail)
	if err != nil {
		return registration.Submission{}, "", err
	}

	child, err := registration.NewChildInfo(
		input.ChildFirstName, input.ChildLastName, input.ChildDateOfBirth,
		input.ChildGradeLevel, input.ChildAllergies, input.ChildSpecialNeeds,
	)
	if err != nil {
		return registration.Submission{}, "", err
	}

	contact, err := registration.NewEmergencyContact(input.ContactName, input.ContactRelationship, input.ContactPhone)
	if err != nil {
		return registration.Submission{}, "", err
	}

	amount, err := registration.NewMoney(input.AmountPaidCents)
	if err != nil {
		return registration.Submission{}, "", err
	}

	return registration.Submission{
		Child:            child,
		EmergencyContact: contact,
		AgreedToTerms:    input.AgreedToTerms,
		PhotoRelease:     input.PhotoRelease,
		AmountPaid:       amount,
	}, email, nil
}

// resolveParent finds the account by email or creates one. Profile fields
// never overwrite an existing account. A duplicate-key race on create means
// another request won the insert; the re-read is the answer.
func (u *enrollmentUseCaseImpl) resolveParent(ctx context.Context, tx shared.Tx, email account.Email, profile account.Profile) (uuid.UUID, error) {
	snap, err := tx.Parents().FindByEmail(ctx, email)
	if err == nil {
		return snap.ID, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	id, err := tx.Parents().Create(ctx, account.NewParentAccount(email, profile))
	if err == nil {
		return id, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snap, err = tx.Parents().FindByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap.ID, nil
}

// admitToCourse locks the course row and checks start date and remaining
// seats under that lock. The lock is held until commit, closing the race
// between the count and the insert.
func (u *enrollmentUseCaseImpl) admitToCourse(ctx context.Context, tx shared.Tx, courseID uuid.UUID) (*course.Course, error) {
	courseEntity, err := tx.Courses().LockByID(ctx, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCourseNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if courseEntity.HasStarted(u.clock.Now()) {
		return nil, errs.ErrCourseAlreadyStarted
	}

	committed, err := tx.Registrations().CountCommitted(ctx, courseID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if courseEntity.AvailableSpots(committed) == 0 {
		return nil, errs.ErrCourseFull
	}

	return courseEntity, nil
}

// applyDiscount validates then consumes the code. Consume is a guarded
// increment in the store; a zero-row result means another transaction took
// the last use after our advisory check.
func (u *enrollmentUseCaseImpl) applyDiscount(ctx context.Context, tx shared.Tx, code *string) (*discount.DiscountCode, error) {
	if code == nil {
		return nil, nil
	}

	entity, err := tx.Discounts().FindByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDiscountNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.ValidateUsage(u.clock.Now()); err != nil {
		return nil, queries.MarkDiscountRejection(err)
	}

	if err := tx.Discounts().Consume(ctx, entity.ID()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrDiscountCapReached)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity, nil
}

// mintAndPersist draws confirmation numbers until one inserts cleanly. A
// duplicate-key result from the insert is a mint collision that slipped past
// the existence check, not a failure; it burns one retry and leaves the
// transaction usable for the next draw.
func (u *enrollmentUseCaseImpl) mintAndPersist(
	ctx context.Context,
	tx shared.Tx,
	parentID uuid.UUID,
	courseEntity *course.Course,
	discountEntity *discount.DiscountCode,
	sub registration.Submission,
) (uuid.UUID, error) {
	for attempt := 0; attempt < u.cfg.ConfirmationMaxRetries; attempt++ {
		number, err := registration.MintConfirmationNumber(u.cfg.ConfirmationPrefix)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		exists, err := tx.Registrations().ConfirmationExists(ctx, number)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			continue
		}

		reg, err := u.registrationFactory.CreateRegistration(number, parentID, courseEntity, discountEntity, sub)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		id, err := tx.Registrations().Create(ctx, reg)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				continue
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return id, nil
	}

	return uuid.Nil, errs.ErrConfirmationExhausted
}
