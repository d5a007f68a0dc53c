package course

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrEmptyName       = errors.New("course name is required")
	ErrAlreadyStarted  = errors.New("course has already started")
)

// Course carries a fixed seat capacity. Committed seats are derived from
// registrations and accounted at the storage layer; the entity only answers
// the advisory questions.
type Course struct {
	id        uuid.UUID
	name      string
	capacity  int
	startDate time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewCourse(name string, capacity int, startDate time.Time) (*Course, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Course{
		id:        uuid.New(),
		name:      name,
		capacity:  capacity,
		startDate: startDate,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, capacity int, startDate, createdAt, updatedAt time.Time) *Course {
	return &Course{
		id:        id,
		name:      name,
		capacity:  capacity,
		startDate: startDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// HasStarted reports whether enrollment is closed because the course already
// began. Enrollment at the exact start instant is still allowed.
func (c *Course) HasStarted(now time.Time) bool {
	return now.After(c.startDate)
}

func (c *Course) AvailableSpots(committedSeats int) int {
	spots := c.capacity - committedSeats
	if spots < 0 {
		return 0
	}
	return spots
}

func (c *Course) ID() uuid.UUID        { return c.id }
func (c *Course) Name() string         { return c.name }
func (c *Course) Capacity() int        { return c.capacity }
func (c *Course) StartDate() time.Time { return c.startDate }
func (c *Course) CreatedAt() time.Time { return c.createdAt }
func (c *Course) UpdatedAt() time.Time { return c.updatedAt }
