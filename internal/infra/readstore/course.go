package readstore

import (
	"context"
	"errors"

	"enrollhub/internal/infra"
	"enrollhub/internal/infra/db"
	"enrollhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourseReadStore struct {
	db db.DBTX
}

func NewCourseReadStore(dbtx db.DBTX) *CourseReadStore {
	return &CourseReadStore{db: dbtx}
}

const courseViewQuery = `
	SELECT c.id, c.name, c.capacity,
	       GREATEST(c.capacity - COUNT(r.id) FILTER (WHERE r.payment_status IN ('pending', 'completed')), 0),
	       c.start_date, c.created_at
	FROM courses c
	LEFT JOIN registrations r ON r.course_id = c.id
`

func (r *CourseReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	var view queries.CourseView
	err := r.db.QueryRow(ctx,
		courseViewQuery+` WHERE c.id = $1 GROUP BY c.id`,
		id,
	).Scan(&view.ID, &view.Name, &view.Capacity, &view.AvailableSpots, &view.StartDate, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get course view", err)
	}
	return &view, nil
}

func (r *CourseReadStore) List(ctx context.Context) ([]*queries.CourseView, error) {
	rows, err := r.db.Query(ctx, courseViewQuery+` GROUP BY c.id ORDER BY c.start_date`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courses", err)
	}
	defer rows.Close()

	var views []*queries.CourseView
	for rows.Next() {
		var view queries.CourseView
		if err := rows.Scan(&view.ID, &view.Name, &view.Capacity, &view.AvailableSpots, &view.StartDate, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course rows", err)
	}
	return views, nil
}
