package staff

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid staff role")

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	switch role {
	case RoleAdmin, RoleOperator:
		return role, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Staff is a back-office user: the only principals that carry a usable
// credential in this system. Parent accounts never do.
type Staff struct {
	id       uuid.UUID
	email    string
	role     Role
	isActive bool
}

func Reconstruct(id uuid.UUID, email string, role Role, isActive bool) *Staff {
	return &Staff{
		id:       id,
		email:    email,
		role:     role,
		isActive: isActive,
	}
}

func (s *Staff) ID() uuid.UUID  { return s.id }
func (s *Staff) Email() string  { return s.email }
func (s *Staff) Role() Role     { return s.role }
func (s *Staff) IsActive() bool { return s.isActive }
