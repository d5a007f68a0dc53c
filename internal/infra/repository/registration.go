package repository

import (
	"context"

	"enrollhub/internal/domain/registration"
	"enrollhub/internal/infra"
	"enrollhub/internal/infra/db"

	"github.com/google/uuid"
)

type RegistrationRepository struct {
	db db.DBTX
}

func NewRegistrationRepository(dbtx db.DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: dbtx}
}

// Create inserts with ON CONFLICT DO NOTHING on the confirmation number: a
// unique violation would abort the surrounding transaction, and a collision
// here must leave it healthy so the caller can re-mint and insert again.
func (r *RegistrationRepository) Create(ctx context.Context, reg *registration.Registration) (uuid.UUID, error) {
	child := reg.Child()
	contact := reg.EmergencyContact()

	tag, err := r.db.Exec(ctx,
		`INSERT INTO registrations (
			id, confirmation_number, parent_id, course_id,
			child_first_name, child_last_name, child_date_of_birth, child_grade_level,
			child_allergies, child_special_needs,
			contact_name, contact_relationship, contact_phone,
			agreed_to_terms, photo_release, discount_code_id, amount_paid_cents, payment_status
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 ON CONFLICT (confirmation_number) DO NOTHING`,
		reg.ID(), reg.ConfirmationNumber().String(), reg.ParentID(), reg.CourseID(),
		child.FirstName, child.LastName, child.DateOfBirth, child.GradeLevel,
		child.Allergies, child.SpecialNeeds,
		contact.Name, contact.Relationship, contact.Phone,
		reg.AgreedToTerms(), reg.PhotoRelease(), reg.DiscountCodeID(),
		reg.AmountPaid().Cents(), reg.PaymentStatus().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create registration", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("confirmation number already taken", nil, infra.KindDuplicateKey)
	}
	return reg.ID(), nil
}

// CountCommitted counts seats held by registrations in a non-terminal payment
// state. Cancelled rows never hold a seat.
func (r *RegistrationRepository) CountCommitted(ctx context.Context, courseID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations
		 WHERE course_id = $1 AND payment_status IN ('pending', 'completed')`,
		courseID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count committed registrations", err)
	}
	return count, nil
}

func (r *RegistrationRepository) ConfirmationExists(ctx context.Context, number registration.ConfirmationNumber) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE confirmation_number = $1)`,
		number.String(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check confirmation number", err)
	}
	return exists, nil
}
