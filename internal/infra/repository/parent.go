package repository

import (
	"context"
	"errors"

	"enrollhub/internal/domain/account"
	"enrollhub/internal/infra"
	"enrollhub/internal/infra/db"
	"enrollhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/google/uuid"
)

type ParentRepository struct {
	db db.DBTX
}

func NewParentRepository(dbtx db.DBTX) *ParentRepository {
	return &ParentRepository{db: dbtx}
}

func (r *ParentRepository) FindByEmail(ctx context.Context, email account.Email) (*shared.ParentSnapshot, error) {
	var snap shared.ParentSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, email FROM parent_accounts WHERE email = $1`,
		email.Value(),
	).Scan(&snap.ID, &snap.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("parent account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parent account by email", err)
	}
	return &snap, nil
}

// Create inserts with ON CONFLICT DO NOTHING: raising a unique violation
// inside the enrollment transaction would abort it and poison every later
// statement, so a lost email race must surface as zero rows, not an error.
func (r *ParentRepository) Create(ctx context.Context, acct *account.ParentAccount) (uuid.UUID, error) {
	profile := acct.Profile()
	tag, err := r.db.Exec(ctx,
		`INSERT INTO parent_accounts (id, email, first_name, last_name, phone, address, city, state, zip_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (email) DO NOTHING`,
		acct.ID(), acct.Email().Value(),
		profile.FirstName, profile.LastName, profile.Phone,
		profile.Address, profile.City, profile.State, profile.ZipCode,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create parent account", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("parent account already exists", nil, infra.KindDuplicateKey)
	}
	return acct.ID(), nil
}
