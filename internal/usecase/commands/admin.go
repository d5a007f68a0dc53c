package commands

import (
	"context"
	"time"

	"enrollhub/internal/domain/course"
	"enrollhub/internal/domain/discount"
	"enrollhub/internal/infra"
	"enrollhub/internal/pkg/errs"
	"enrollhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDiscountCodeTaken = errs.New("discount code already exists")

type CreateCourseInput struct {
	Name      string
	Capacity  int
	StartDate time.Time
}

type CreateDiscountInput struct {
	Code        string
	Description string
	Percentage  float64
	StartDate   *time.Time
	EndDate     *time.Time
	MaxUses     *int
}

type AdminCommands interface {
	CreateCourse(ctx context.Context, input CreateCourseInput) (uuid.UUID, error)
	CreateDiscount(ctx context.Context, input CreateDiscountInput) (uuid.UUID, error)
}

type adminUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAdminCommands(uow shared.UnitOfWork) AdminCommands {
	return &adminUseCaseImpl{uow: uow}
}

func (u *adminUseCaseImpl) CreateCourse(ctx context.Context, input CreateCourseInput) (uuid.UUID, error) {
	entity, err := course.NewCourse(input.Name, input.Capacity, input.StartDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Courses().Create(ctx, entity)
		return err
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (u *adminUseCaseImpl) CreateDiscount(ctx context.Context, input CreateDiscountInput) (uuid.UUID, error) {
	code, err := discount.NewCode(input.Code)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	percentage, err := discount.NewPercentage(input.Percentage)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity, err := discount.NewDiscountCode(code, input.Description, percentage, input.StartDate, input.EndDate, input.MaxUses)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Discounts().Create(ctx, entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDiscountCodeTaken)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}
