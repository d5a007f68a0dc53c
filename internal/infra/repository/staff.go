package repository

import (
	"context"
	"errors"

	"enrollhub/internal/domain/staff"
	"enrollhub/internal/infra"
	"enrollhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

// FindByEmail returns the staff user and the stored password hash. The hash
// stays out of the entity so it cannot leak past the login use case.
func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*staff.Staff, string, error) {
	var (
		id           uuid.UUID
		role         string
		isActive     bool
		passwordHash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, role, is_active, password_hash FROM staff_users WHERE email = $1`,
		email,
	).Scan(&id, &role, &isActive, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("staff user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff user by email", err)
	}

	staffRole, err := staff.NewRole(role)
	if err != nil {
		return nil, "", infra.WrapRepoErr("invalid staff role in store", err)
	}

	return staff.Reconstruct(id, email, staffRole, isActive), passwordHash, nil
}
