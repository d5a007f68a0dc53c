//go:build unit

package discount_test

import (
	"testing"
	"time"

	"enrollhub/internal/domain/discount"
	"enrollhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscountCode(t *testing.T) {
	code, err := discount.NewCode("summer25")
	require.NoError(t, err)
	assert.Equal(t, "SUMMER25", code.String())

	percentage, err := discount.NewPercentage(25)
	require.NoError(t, err)

	t.Run("valid code", func(t *testing.T) {
		entity, err := discount.NewDiscountCode(code, "Summer promotion", percentage, nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, entity.IsActive())
		assert.Equal(t, 0, entity.CurrentUses())
	})

	t.Run("zero max uses rejected", func(t *testing.T) {
		zero := 0
		_, err := discount.NewDiscountCode(code, "Summer promotion", percentage, nil, nil, &zero)
		assert.ErrorIs(t, err, discount.ErrInvalidMaxUses)
	})
}

func TestCodeFormat(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"uppercased alphanumeric", "EARLYBIRD10", true},
		{"lowercase normalized", "earlybird10", true},
		{"minimum length", "ABC", true},
		{"too short", "AB", false},
		{"too long", "ABCDEFGHIJKLMNOPQRSTU", false},
		{"whitespace trimmed", "  SAVE10  ", true},
		{"special characters rejected", "SAVE-10", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := discount.NewCode(tc.input)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, discount.ErrInvalidCode)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		_, err := discount.NewPercentage(0)
		assert.ErrorIs(t, err, discount.ErrInvalidPercent)

		_, err = discount.NewPercentage(100.1)
		assert.ErrorIs(t, err, discount.ErrInvalidPercent)

		p, err := discount.NewPercentage(100)
		require.NoError(t, err)
		assert.Equal(t, int64(0), p.ApplyTo(15000))
	})

	t.Run("apply to amount", func(t *testing.T) {
		p, err := discount.NewPercentage(25)
		require.NoError(t, err)
		assert.Equal(t, int64(11250), p.ApplyTo(15000))
	})
}

func TestValidateUsage(t *testing.T) {
	windowStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	t.Run("window boundaries are inclusive on both ends", func(t *testing.T) {
		entity := builder.NewDiscountBuilder().WithWindow(windowStart, windowEnd).BuildDomain()

		assert.ErrorIs(t, entity.ValidateUsage(windowStart.Add(-time.Nanosecond)), discount.ErrCodeNotYetActive)
		assert.NoError(t, entity.ValidateUsage(windowStart))
		assert.NoError(t, entity.ValidateUsage(windowStart.Add(24*time.Hour)))
		assert.NoError(t, entity.ValidateUsage(windowEnd))
		assert.ErrorIs(t, entity.ValidateUsage(windowEnd.Add(time.Nanosecond)), discount.ErrCodeExpired)
	})

	t.Run("open-ended window", func(t *testing.T) {
		entity := builder.NewDiscountBuilder().BuildDomain()
		assert.NoError(t, entity.ValidateUsage(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.NoError(t, entity.ValidateUsage(time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("usage cap", func(t *testing.T) {
		now := time.Now()

		underCap := builder.NewDiscountBuilder().WithMaxUses(10, 9).BuildDomain()
		assert.NoError(t, underCap.ValidateUsage(now))

		atCap := builder.NewDiscountBuilder().WithMaxUses(10, 10).BuildDomain()
		assert.ErrorIs(t, atCap.ValidateUsage(now), discount.ErrUsageCapReached)
	})

	t.Run("inactive code", func(t *testing.T) {
		entity := builder.NewDiscountBuilder().Inactive().BuildDomain()
		assert.ErrorIs(t, entity.ValidateUsage(time.Now()), discount.ErrCodeInactive)
	})

	t.Run("inactive wins over expiry", func(t *testing.T) {
		entity := builder.NewDiscountBuilder().
			Inactive().
			WithWindow(windowStart, windowEnd).
			BuildDomain()
		assert.ErrorIs(t, entity.ValidateUsage(windowEnd.Add(time.Hour)), discount.ErrCodeInactive)
	})
}

func TestIsEligibleAt(t *testing.T) {
	windowStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	entity := builder.NewDiscountBuilder().WithWindow(windowStart, windowEnd).BuildDomain()

	assert.False(t, entity.IsEligibleAt(windowStart.Add(-time.Second)))
	assert.True(t, entity.IsEligibleAt(windowStart))
	assert.True(t, entity.IsEligibleAt(windowEnd))
	assert.False(t, entity.IsEligibleAt(windowEnd.Add(time.Second)))
}
