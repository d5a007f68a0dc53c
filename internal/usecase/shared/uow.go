package shared

import (
	"context"

	"enrollhub/internal/domain/account"
	"enrollhub/internal/domain/course"
	"enrollhub/internal/domain/discount"
	"enrollhub/internal/domain/registration"
	"enrollhub/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes one consistent view of durable state to one enrollment
// attempt. Every collaborator inside Within sees the same transaction; commit
// and rollback are a single unit, so a consumed discount use can never outlive
// a failed registration insert.
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Parents() ParentRepository
	Courses() CourseRepository
	Discounts() DiscountRepository
	Registrations() RegistrationRepository
	DB() db.DBTX
}

type ParentRepository interface {
	FindByEmail(ctx context.Context, email account.Email) (*ParentSnapshot, error)
	// Create inserts a new account without any usable credential. A duplicate
	// email reports KindDuplicateKey so the caller can re-read instead of
	// failing the race.
	Create(ctx context.Context, acct *account.ParentAccount) (uuid.UUID, error)
}

type CourseRepository interface {
	// LockByID acquires the course row FOR UPDATE, serializing concurrent
	// enrollments into the same course for the rest of the transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*course.Course, error)
	Create(ctx context.Context, c *course.Course) (uuid.UUID, error)
}

type DiscountRepository interface {
	FindByCode(ctx context.Context, code string) (*discount.DiscountCode, error)
	// Consume increments current_uses only while below the cap; it reports
	// KindConflict when the guarded update matches no row.
	Consume(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, d *discount.DiscountCode) (uuid.UUID, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *registration.Registration) (uuid.UUID, error)
	// CountCommitted counts registrations holding a seat (pending or
	// completed) for the course.
	CountCommitted(ctx context.Context, courseID uuid.UUID) (int, error)
	ConfirmationExists(ctx context.Context, number registration.ConfirmationNumber) (bool, error)
}

type ParentSnapshot struct {
	ID    uuid.UUID
	Email string
}
