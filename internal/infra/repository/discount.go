package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"enrollhub/internal/domain/discount"
	"enrollhub/internal/infra"
	"enrollhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

type DiscountRepository struct {
	db db.DBTX
}

func NewDiscountRepository(dbtx db.DBTX) *DiscountRepository {
	return &DiscountRepository{db: dbtx}
}

func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (*discount.DiscountCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var (
		id                   uuid.UUID
		description          string
		percentage           float64
		isActive             bool
		startDate, endDate   *time.Time
		maxUses              *int
		currentUses          int
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, description, discount_percentage, is_active, start_date, end_date,
		        max_uses, current_uses, created_at, updated_at
		 FROM discount_codes
		 WHERE code = $1`,
		normalized,
	).Scan(&id, &description, &percentage, &isActive, &startDate, &endDate,
		&maxUses, &currentUses, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount code", err)
	}

	return discount.Reconstruct(
		id, discount.Code(normalized), description, discount.Percentage(percentage),
		isActive, startDate, endDate, maxUses, currentUses, createdAt, updatedAt,
	), nil
}

// Consume is the guarded conditional update: the increment only lands while
// current_uses is still below the cap, so two submissions racing for the last
// use resolve with exactly one winner regardless of what their earlier
// advisory validation saw.
func (r *DiscountRepository) Consume(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE discount_codes
		 SET current_uses = current_uses + 1, updated_at = now()
		 WHERE id = $1
		   AND is_active
		   AND (max_uses IS NULL OR current_uses < max_uses)`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to consume discount code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount code usage cap reached", nil, infra.KindConflict)
	}
	return nil
}

func (r *DiscountRepository) Create(ctx context.Context, d *discount.DiscountCode) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO discount_codes (id, code, description, discount_percentage, is_active, start_date, end_date, max_uses, current_uses)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID(), d.Code().String(), d.Description(), d.Percentage().Value(),
		d.IsActive(), d.StartDate(), d.EndDate(), d.MaxUses(), d.CurrentUses(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("discount code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create discount code", err)
	}
	return d.ID(), nil
}
