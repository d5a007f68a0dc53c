package account

import (
	"time"

	"github.com/google/uuid"
)

// ParentAccount is keyed by email. It is created on first registration and
// never mutated by the enrollment flow: profile fields from later submissions
// do not overwrite an existing account.
type ParentAccount struct {
	id        uuid.UUID
	email     Email
	profile   Profile
	createdAt time.Time
	updatedAt time.Time
}

type Profile struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

func NewParentAccount(email Email, profile Profile) *ParentAccount {
	return &ParentAccount{
		id:      uuid.New(),
		email:   email,
		profile: profile,
	}
}

func Reconstruct(id uuid.UUID, email Email, profile Profile, createdAt, updatedAt time.Time) *ParentAccount {
	return &ParentAccount{
		id:        id,
		email:     email,
		profile:   profile,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *ParentAccount) ID() uuid.UUID        { return a.id }
func (a *ParentAccount) Email() Email         { return a.email }
func (a *ParentAccount) Profile() Profile     { return a.profile }
func (a *ParentAccount) CreatedAt() time.Time { return a.createdAt }
func (a *ParentAccount) UpdatedAt() time.Time { return a.updatedAt }
