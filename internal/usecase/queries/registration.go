package queries

import (
	"context"
	"time"

	"enrollhub/internal/infra"
	"enrollhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RegistrationView struct {
	ID                 uuid.UUID  `json:"id"`
	ConfirmationNumber string     `json:"confirmation_number"`
	CourseID           uuid.UUID  `json:"course_id"`
	CourseName         string     `json:"course_name"`
	ParentID           uuid.UUID  `json:"parent_id"`
	ParentEmail        string     `json:"parent_email"`
	ChildFirstName     string     `json:"child_first_name"`
	ChildLastName      string     `json:"child_last_name"`
	DiscountCode       *string    `json:"discount_code,omitempty"`
	AmountPaidCents    int64      `json:"amount_paid_cents"`
	PaymentStatus      string     `json:"payment_status"`
	CreatedAt          time.Time  `json:"created_at"`
}

type RegistrationListItem struct {
	ID                 uuid.UUID `json:"id"`
	ConfirmationNumber string    `json:"confirmation_number"`
	ChildFirstName     string    `json:"child_first_name"`
	ChildLastName      string    `json:"child_last_name"`
	ParentEmail        string    `json:"parent_email"`
	PaymentStatus      string    `json:"payment_status"`
	CreatedAt          time.Time `json:"created_at"`
}

type RegistrationReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RegistrationView, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*RegistrationListItem, error)
}

type RegistrationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RegistrationView, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*RegistrationListItem, error)
}

type registrationQueriesImpl struct {
	store RegistrationReadStore
}

func NewRegistrationQueries(store RegistrationReadStore) RegistrationQueries {
	return &registrationQueriesImpl{store: store}
}

func (q *registrationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RegistrationView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRegistrationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *registrationQueriesImpl) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*RegistrationListItem, error) {
	items, err := q.store.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
