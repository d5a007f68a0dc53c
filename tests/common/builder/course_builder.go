//go:build unit || e2e

package builder

import (
	"time"

	"enrollhub/internal/domain/course"

	"github.com/google/uuid"
)

type CourseBuilder struct {
	ID        uuid.UUID
	Name      string
	Capacity  int
	StartDate time.Time
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:        uuid.New(),
		Name:      "Robotics Camp",
		Capacity:  12,
		StartDate: time.Now().Add(30 * 24 * time.Hour),
	}
}

func (b *CourseBuilder) WithCapacity(capacity int) *CourseBuilder {
	b.Capacity = capacity
	return b
}

func (b *CourseBuilder) WithStartDate(start time.Time) *CourseBuilder {
	b.StartDate = start
	return b
}

func (b *CourseBuilder) BuildDomain() *course.Course {
	now := time.Now()
	return course.Reconstruct(b.ID, b.Name, b.Capacity, b.StartDate, now, now)
}
