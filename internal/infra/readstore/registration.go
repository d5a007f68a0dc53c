package readstore

import (
	"context"
	"errors"

	"enrollhub/internal/infra"
	"enrollhub/internal/infra/db"
	"enrollhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RegistrationReadStore struct {
	db db.DBTX
}

func NewRegistrationReadStore(dbtx db.DBTX) *RegistrationReadStore {
	return &RegistrationReadStore{db: dbtx}
}

func (r *RegistrationReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.RegistrationView, error) {
	var view queries.RegistrationView
	err := r.db.QueryRow(ctx,
		`SELECT r.id, r.confirmation_number, r.course_id, c.name, r.parent_id, p.email,
		        r.child_first_name, r.child_last_name, d.code,
		        r.amount_paid_cents, r.payment_status, r.created_at
		 FROM registrations r
		 JOIN courses c ON c.id = r.course_id
		 JOIN parent_accounts p ON p.id = r.parent_id
		 LEFT JOIN discount_codes d ON d.id = r.discount_code_id
		 WHERE r.id = $1`,
		id,
	).Scan(
		&view.ID, &view.ConfirmationNumber, &view.CourseID, &view.CourseName,
		&view.ParentID, &view.ParentEmail,
		&view.ChildFirstName, &view.ChildLastName, &view.DiscountCode,
		&view.AmountPaidCents, &view.PaymentStatus, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get registration view", err)
	}
	return &view, nil
}

func (r *RegistrationReadStore) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*queries.RegistrationListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.confirmation_number, r.child_first_name, r.child_last_name,
		        p.email, r.payment_status, r.created_at
		 FROM registrations r
		 JOIN parent_accounts p ON p.id = r.parent_id
		 WHERE r.course_id = $1
		 ORDER BY r.created_at`,
		courseID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations by course", err)
	}
	defer rows.Close()

	var items []*queries.RegistrationListItem
	for rows.Next() {
		var item queries.RegistrationListItem
		if err := rows.Scan(
			&item.ID, &item.ConfirmationNumber, &item.ChildFirstName, &item.ChildLastName,
			&item.ParentEmail, &item.PaymentStatus, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan registration row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate registration rows", err)
	}
	return items, nil
}
