package repository

import (
	"context"
	"errors"
	"time"

	"enrollhub/internal/domain/course"
	"enrollhub/internal/infra"
	"enrollhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourseRepository struct {
	db db.DBTX
}

func NewCourseRepository(dbtx db.DBTX) *CourseRepository {
	return &CourseRepository{db: dbtx}
}

// LockByID reads the course row FOR UPDATE. Two transactions racing for the
// last seat serialize here: the loser re-reads the committed count only after
// the winner's insert is visible.
func (r *CourseRepository) LockByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	var (
		name                 string
		capacity             int
		startDate            time.Time
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT name, capacity, start_date, created_at, updated_at
		 FROM courses
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	).Scan(&name, &capacity, &startDate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock course row", err)
	}

	return course.Reconstruct(id, name, capacity, startDate, createdAt, updatedAt), nil
}

func (r *CourseRepository) Create(ctx context.Context, c *course.Course) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO courses (id, name, capacity, start_date) VALUES ($1, $2, $3, $4)`,
		c.ID(), c.Name(), c.Capacity(), c.StartDate(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create course", err)
	}
	return c.ID(), nil
}
