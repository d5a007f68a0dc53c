//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO staff_users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		staffID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff_users WHERE email = $1", email).Scan(&staffID)
	}

	return staffID
}

func CreateTestCourse(t *testing.T, db DBLike, name string, capacity int, startDate time.Time) uuid.UUID {
	t.Helper()

	courseID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO courses (id, name, capacity, start_date) VALUES ($1, $2, $3, $4)",
		courseID, name, capacity, startDate)
	require.NoError(t, err)

	return courseID
}

func CreateTestDiscount(t *testing.T, db DBLike, code string, percentage float64, startDate, endDate *time.Time, maxUses *int) uuid.UUID {
	t.Helper()

	discountID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO discount_codes (id, code, description, discount_percentage, is_active, start_date, end_date, max_uses)
		VALUES ($1, $2, $3, $4, true, $5, $6, $7)`,
		discountID, code, "Test discount", percentage, startDate, endDate, maxUses)
	require.NoError(t, err)

	return discountID
}

func CountRegistrations(t *testing.T, db DBLike, courseID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM registrations WHERE course_id = $1", courseID).Scan(&count)
	require.NoError(t, err)
	return count
}

func DiscountUses(t *testing.T, db DBLike, discountID uuid.UUID) int {
	t.Helper()

	var uses int
	err := db.QueryRow(context.Background(),
		"SELECT current_uses FROM discount_codes WHERE id = $1", discountID).Scan(&uses)
	require.NoError(t, err)
	return uses
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
