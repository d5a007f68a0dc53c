//go:build unit

package course_test

import (
	"testing"
	"time"

	"enrollhub/internal/domain/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		c, err := course.NewCourse("Robotics Camp", 12, start)
		require.NoError(t, err)
		assert.Equal(t, 12, c.Capacity())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := course.NewCourse("", 12, start)
		assert.ErrorIs(t, err, course.ErrEmptyName)
	})

	t.Run("non-positive capacity rejected", func(t *testing.T) {
		_, err := course.NewCourse("Robotics Camp", 0, start)
		assert.ErrorIs(t, err, course.ErrInvalidCapacity)

		_, err = course.NewCourse("Robotics Camp", -3, start)
		assert.ErrorIs(t, err, course.ErrInvalidCapacity)
	})
}

func TestHasStarted(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	c, err := course.NewCourse("Robotics Camp", 12, start)
	require.NoError(t, err)

	assert.False(t, c.HasStarted(start.Add(-time.Second)))
	assert.False(t, c.HasStarted(start), "the exact start instant still admits")
	assert.True(t, c.HasStarted(start.Add(time.Second)))
}

func TestAvailableSpots(t *testing.T) {
	c, err := course.NewCourse("Robotics Camp", 12, time.Now().Add(48*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 12, c.AvailableSpots(0))
	assert.Equal(t, 1, c.AvailableSpots(11))
	assert.Equal(t, 0, c.AvailableSpots(12))
	// Overcommit can only come from dirty data; never report negative seats.
	assert.Equal(t, 0, c.AvailableSpots(15))
}
