//go:build unit

package registration_test

import (
	"regexp"
	"testing"
	"time"

	"enrollhub/internal/domain/registration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationNumber(t *testing.T) {
	t.Run("format validation", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
			valid bool
		}{
			{"standard prefix", "RB123456", true},
			{"lowercase normalized", "rb123456", true},
			{"long prefix", "ABCD000001", true},
			{"no prefix", "123456", false},
			{"short suffix", "RB12345", false},
			{"long suffix", "RB1234567", false},
			{"letters in suffix", "RB12A456", false},
			{"empty", "", false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := registration.NewConfirmationNumber(tc.input)
				if tc.valid {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, registration.ErrInvalidConfirmation)
				}
			})
		}
	})

	t.Run("minted numbers carry the prefix and a six digit suffix", func(t *testing.T) {
		shape := regexp.MustCompile(`^RB\d{6}$`)
		for range 50 {
			number, err := registration.MintConfirmationNumber("RB")
			require.NoError(t, err)
			assert.Regexp(t, shape, number.String())
		}
	})
}

func TestChildInfo(t *testing.T) {
	birth := time.Date(2016, 4, 12, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		child, err := registration.NewChildInfo(" Jamie ", " Doe ", birth, "3rd", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Jamie", child.FirstName)
		assert.Equal(t, "Doe", child.LastName)
	})

	t.Run("missing names rejected", func(t *testing.T) {
		_, err := registration.NewChildInfo("", "Doe", birth, "3rd", nil, nil)
		assert.ErrorIs(t, err, registration.ErrMissingChildName)

		_, err = registration.NewChildInfo("Jamie", "   ", birth, "3rd", nil, nil)
		assert.ErrorIs(t, err, registration.ErrMissingChildName)
	})
}

func TestEmergencyContact(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		contact, err := registration.NewEmergencyContact("Sam Doe", "Uncle", "555-0102")
		require.NoError(t, err)
		assert.Equal(t, "Sam Doe", contact.Name)
	})

	t.Run("any blank field rejected", func(t *testing.T) {
		_, err := registration.NewEmergencyContact("", "Uncle", "555-0102")
		assert.ErrorIs(t, err, registration.ErrMissingContact)

		_, err = registration.NewEmergencyContact("Sam Doe", "", "555-0102")
		assert.ErrorIs(t, err, registration.ErrMissingContact)

		_, err = registration.NewEmergencyContact("Sam Doe", "Uncle", " ")
		assert.ErrorIs(t, err, registration.ErrMissingContact)
	})
}

func TestMoney(t *testing.T) {
	m, err := registration.NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Cents())

	_, err = registration.NewMoney(-1)
	assert.ErrorIs(t, err, registration.ErrNegativeAmount)
}
