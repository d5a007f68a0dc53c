//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"enrollhub/internal/domain/registration"
	"enrollhub/internal/infra"
	"enrollhub/internal/pkg/clock"
	"enrollhub/internal/pkg/config"
	"enrollhub/internal/pkg/errs"
	"enrollhub/internal/usecase/commands"
	"enrollhub/internal/usecase/queries"
	"enrollhub/internal/usecase/shared"
	"enrollhub/tests/common/builder"
	queriesmock "enrollhub/tests/mock/queries"
	sharedmock "enrollhub/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EnrollmentCommandsTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	uow                 *sharedmock.MockUnitOfWork
	tx                  *sharedmock.MockTx
	parentRepo          *sharedmock.MockParentRepository
	courseRepo          *sharedmock.MockCourseRepository
	discountRepo        *sharedmock.MockDiscountRepository
	registrationRepo    *sharedmock.MockRegistrationRepository
	registrationQueries *queriesmock.MockRegistrationQueries
	clock               *clock.MockClock
	usecase             commands.EnrollmentCommands
}

func (s *EnrollmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.parentRepo = sharedmock.NewMockParentRepository(s.ctrl)
	s.courseRepo = sharedmock.NewMockCourseRepository(s.ctrl)
	s.discountRepo = sharedmock.NewMockDiscountRepository(s.ctrl)
	s.registrationRepo = sharedmock.NewMockRegistrationRepository(s.ctrl)
	s.registrationQueries = queriesmock.NewMockRegistrationQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))

	s.tx.EXPECT().Parents().Return(s.parentRepo).AnyTimes()
	s.tx.EXPECT().Courses().Return(s.courseRepo).AnyTimes()
	s.tx.EXPECT().Discounts().Return(s.discountRepo).AnyTimes()
	s.tx.EXPECT().Registrations().Return(s.registrationRepo).AnyTimes()

	s.usecase = commands.NewEnrollmentCommands(
		s.uow,
		registration.NewFactory(s.clock),
		s.registrationQueries,
		s.clock,
		config.NewTestConfig(),
	)
}

func (s *EnrollmentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEnrollmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentCommandsTestSuite))
}

// expectWithin routes the transactional closure through the mock Tx so the
// orchestration runs against the per-step repository mocks.
func (s *EnrollmentCommandsTestSuite) expectWithin() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).Times(1)
}

func (s *EnrollmentCommandsTestSuite) futureCourse() *builder.CourseBuilder {
	return builder.NewCourseBuilder().WithStartDate(s.clock.Now().Add(72 * time.Hour))
}

func (s *EnrollmentCommandsTestSuite) TestCreateRegistration() {
	notFound := infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)
	dup := infra.WrapRepoErr("unique violation", errors.New("SQLSTATE 23505"), infra.KindDuplicateKey)

	s.Run("happy path: existing parent, no discount", func() {
		courseEntity := s.futureCourse().BuildDomain()
		input := builder.NewRegistrationBuilder().WithCourseID(courseEntity.ID()).BuildInput()
		parentID := uuid.New()
		registrationID := uuid.New()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: parentID, Email: input.ParentEmail}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(3, nil)
		s.registrationRepo.EXPECT().ConfirmationExists(gomock.Any(), gomock.Any()).Return(false, nil)
		s.registrationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(registrationID, nil)
		s.registrationQueries.EXPECT().GetByID(gomock.Any(), registrationID).Return(&queries.RegistrationView{
			ID:                 registrationID,
			ConfirmationNumber: "RB123456",
			CourseID:           courseEntity.ID(),
			ParentEmail:        input.ParentEmail,
		}, nil)

		result, err := s.usecase.CreateRegistration(context.Background(), input)
		s.Require().NoError(err)
		want := &commands.EnrollmentResult{
			RegistrationID:     registrationID,
			ConfirmationNumber: "RB123456",
			CourseID:           courseEntity.ID(),
			ParentEmail:        input.ParentEmail,
		}
		if diff := cmp.Diff(want, result); diff != "" {
			s.Failf("unexpected enrollment result", "(-want +got):\n%s", diff)
		}
	})

	s.Run("terms not agreed short-circuits before any storage work", func() {
		input := builder.NewRegistrationBuilder().WithAgreedToTerms(false).BuildInput()

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrTermsNotAgreed)
	})

	s.Run("invalid submission is rejected before the transaction", func() {
		input := builder.NewRegistrationBuilder().BuildInput()
		input.ChildFirstName = ""

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("parent create race: duplicate key falls back to re-read", func() {
		courseEntity := s.futureCourse().BuildDomain()
		input := builder.NewRegistrationBuilder().WithCourseID(courseEntity.ID()).BuildInput()
		parentID := uuid.New()
		registrationID := uuid.New()

		s.expectWithin()
		gomock.InOrder(
			s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound),
			s.parentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, dup),
			s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
				Return(&shared.ParentSnapshot{ID: parentID, Email: input.ParentEmail}, nil),
		)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(0, nil)
		s.registrationRepo.EXPECT().ConfirmationExists(gomock.Any(), gomock.Any()).Return(false, nil)
		s.registrationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(registrationID, nil)
		s.registrationQueries.EXPECT().GetByID(gomock.Any(), registrationID).Return(&queries.RegistrationView{
			ID:       registrationID,
			CourseID: courseEntity.ID(),
		}, nil)

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.NoError(err)
	})

	s.Run("course not found", func() {
		input := builder.NewRegistrationBuilder().BuildInput()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), input.CourseID).Return(nil, notFound)

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrCourseNotFound)
	})

	s.Run("course full: last seat already committed", func() {
		courseEntity := s.futureCourse().WithCapacity(10).BuildDomain()
		input := builder.NewRegistrationBuilder().WithCourseID(courseEntity.ID()).BuildInput()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(10, nil)

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrCourseFull)
	})

	s.Run("course already started", func() {
		courseEntity := builder.NewCourseBuilder().
			WithStartDate(s.clock.Now().Add(-time.Hour)).BuildDomain()
		input := builder.NewRegistrationBuilder().WithCourseID(courseEntity.ID()).BuildInput()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrCourseAlreadyStarted)
	})

	s.Run("discount consume conflict maps to cap reached", func() {
		courseEntity := s.futureCourse().BuildDomain()
		discountEntity := builder.NewDiscountBuilder().BuildDomain()
		input := builder.NewRegistrationBuilder().
			WithCourseID(courseEntity.ID()).
			WithDiscountCode("SUMMER25").
			BuildInput()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(0, nil)
		s.discountRepo.EXPECT().FindByCode(gomock.Any(), "SUMMER25").Return(discountEntity, nil)
		s.discountRepo.EXPECT().Consume(gomock.Any(), discountEntity.ID()).
			Return(infra.WrapRepoErr("cap reached", nil, infra.KindConflict))

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrDiscountCapReached)
	})

	s.Run("expired discount never consumes a use", func() {
		courseEntity := s.futureCourse().BuildDomain()
		expired := builder.NewDiscountBuilder().
			WithWindow(s.clock.Now().Add(-48*time.Hour), s.clock.Now().Add(-24*time.Hour)).
			BuildDomain()
		input := builder.NewRegistrationBuilder().
			WithCourseID(courseEntity.ID()).
			WithDiscountCode("SUMMER25").
			BuildInput()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(0, nil)
		s.discountRepo.EXPECT().FindByCode(gomock.Any(), "SUMMER25").Return(expired, nil)
		// No Consume expectation: validation must fail first.

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrDiscountExpired)
	})

	s.Run("mint collision burns a retry and succeeds on the next draw", func() {
		courseEntity := s.futureCourse().BuildDomain()
		input := builder.NewRegistrationBuilder().WithCourseID(courseEntity.ID()).BuildInput()
		registrationID := uuid.New()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(0, nil)
		gomock.InOrder(
			s.registrationRepo.EXPECT().ConfirmationExists(gomock.Any(), gomock.Any()).Return(true, nil),
			s.registrationRepo.EXPECT().ConfirmationExists(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		s.registrationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(registrationID, nil)
		s.registrationQueries.EXPECT().GetByID(gomock.Any(), registrationID).Return(&queries.RegistrationView{
			ID:       registrationID,
			CourseID: courseEntity.ID(),
		}, nil)

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.NoError(err)
	})

	s.Run("mint retries exhausted", func() {
		courseEntity := s.futureCourse().BuildDomain()
		input := builder.NewRegistrationBuilder().WithCourseID(courseEntity.ID()).BuildInput()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(0, nil)
		s.registrationRepo.EXPECT().ConfirmationExists(gomock.Any(), gomock.Any()).
			Return(true, nil).Times(config.NewTestConfig().Enrollment.ConfirmationMaxRetries)

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.ErrorIs(err, errs.ErrConfirmationExhausted)
	})

	s.Run("duplicate key on insert also burns a retry", func() {
		courseEntity := s.futureCourse().BuildDomain()
		input := builder.NewRegistrationBuilder().WithCourseID(courseEntity.ID()).BuildInput()
		registrationID := uuid.New()

		s.expectWithin()
		s.parentRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.ParentSnapshot{ID: uuid.New()}, nil)
		s.courseRepo.EXPECT().LockByID(gomock.Any(), courseEntity.ID()).Return(courseEntity, nil)
		s.registrationRepo.EXPECT().CountCommitted(gomock.Any(), courseEntity.ID()).Return(0, nil)
		s.registrationRepo.EXPECT().ConfirmationExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		gomock.InOrder(
			s.registrationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, dup),
			s.registrationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(registrationID, nil),
		)
		s.registrationQueries.EXPECT().GetByID(gomock.Any(), registrationID).Return(&queries.RegistrationView{
			ID:       registrationID,
			CourseID: courseEntity.ID(),
		}, nil)

		_, err := s.usecase.CreateRegistration(context.Background(), input)
		s.NoError(err)
	})
}
