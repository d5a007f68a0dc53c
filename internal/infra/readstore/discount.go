package readstore

import (
	"context"

	"enrollhub/internal/domain/discount"
	"enrollhub/internal/infra/db"
	"enrollhub/internal/infra/repository"
)

// DiscountReadStore serves the standalone validation endpoint outside any
// transaction; it reuses the write repository's row mapping.
type DiscountReadStore struct {
	repo *repository.DiscountRepository
}

func NewDiscountReadStore(dbtx db.DBTX) *DiscountReadStore {
	return &DiscountReadStore{repo: repository.NewDiscountRepository(dbtx)}
}

func (r *DiscountReadStore) FindByCode(ctx context.Context, code string) (*discount.DiscountCode, error) {
	return r.repo.FindByCode(ctx, code)
}
