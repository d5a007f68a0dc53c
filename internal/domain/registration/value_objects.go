package registration

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidConfirmation = errors.New("invalid confirmation number format")
	ErrMissingChildName    = errors.New("child first and last name are required")
	ErrMissingContact      = errors.New("emergency contact name, relationship and phone are required")
	ErrNegativeAmount      = errors.New("amount paid cannot be negative")
)

const confirmationSuffixWidth = 6

var confirmationRegex = regexp.MustCompile(`^[A-Z]{1,4}\d{6}$`)

// ConfirmationNumber is the caller-facing identifier of a completed
// registration, distinct from the internal row id. The random suffix space is
// small (10^6 per prefix), so callers must verify store uniqueness and re-mint
// on collision.
type ConfirmationNumber string

func NewConfirmationNumber(value string) (ConfirmationNumber, error) {
	value = strings.TrimSpace(strings.ToUpper(value))
	if !confirmationRegex.MatchString(value) {
		return ConfirmationNumber(""), ErrInvalidConfirmation
	}
	return ConfirmationNumber(value), nil
}

// MintConfirmationNumber draws a fresh candidate with the given prefix and a
// zero-padded 6-digit random suffix.
func MintConfirmationNumber(prefix string) (ConfirmationNumber, error) {
	space := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, space)
	if err != nil {
		return ConfirmationNumber(""), err
	}
	return NewConfirmationNumber(fmt.Sprintf("%s%0*d", prefix, confirmationSuffixWidth, n.Int64()))
}

func (c ConfirmationNumber) String() string {
	return string(c)
}

type ChildInfo struct {
	FirstName    string
	LastName     string
	DateOfBirth  time.Time
	GradeLevel   string
	Allergies    *string
	SpecialNeeds *string
}

func NewChildInfo(firstName, lastName string, dateOfBirth time.Time, gradeLevel string, allergies, specialNeeds *string) (ChildInfo, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return ChildInfo{}, ErrMissingChildName
	}
	return ChildInfo{
		FirstName:    firstName,
		LastName:     lastName,
		DateOfBirth:  dateOfBirth,
		GradeLevel:   gradeLevel,
		Allergies:    allergies,
		SpecialNeeds: specialNeeds,
	}, nil
}

type EmergencyContact struct {
	Name         string
	Relationship string
	Phone        string
}

func NewEmergencyContact(name, relationship, phone string) (EmergencyContact, error) {
	name = strings.TrimSpace(name)
	relationship = strings.TrimSpace(relationship)
	phone = strings.TrimSpace(phone)
	if name == "" || relationship == "" || phone == "" {
		return EmergencyContact{}, ErrMissingContact
	}
	return EmergencyContact{Name: name, Relationship: relationship, Phone: phone}, nil
}

type Money int64

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return 0, ErrNegativeAmount
	}
	return Money(cents), nil
}

func (m Money) Cents() int64 {
	return int64(m)
}
