package queries

import (
	"context"
	"time"

	"enrollhub/internal/infra"
	"enrollhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// CourseView carries the derived availableSpots so the catalog can render
// remaining seats without another round trip. The number is advisory; only
// the enrollment transaction decides admission.
type CourseView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	AvailableSpots int       `json:"available_spots"`
	StartDate      time.Time `json:"start_date"`
	CreatedAt      time.Time `json:"created_at"`
}

type CourseReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
	List(ctx context.Context) ([]*CourseView, error)
}

type CourseQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
	List(ctx context.Context) ([]*CourseView, error)
}

type courseQueriesImpl struct {
	store CourseReadStore
}

func NewCourseQueries(store CourseReadStore) CourseQueries {
	return &courseQueriesImpl{store: store}
}

func (q *courseQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCourseNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *courseQueriesImpl) List(ctx context.Context) ([]*CourseView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
