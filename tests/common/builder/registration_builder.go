//go:build unit || e2e

package builder

import (
	"time"

	reqdto "enrollhub/internal/handler/dto/request"
	"enrollhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegistrationBuilder struct {
	ParentEmail     string
	CourseID        uuid.UUID
	ChildFirstName  string
	ChildLastName   string
	ChildBirth      time.Time
	GradeLevel      string
	AgreedToTerms   bool
	PhotoRelease    bool
	DiscountCode    *string
	AmountPaidCents int64
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		ParentEmail:     "parent@example.com",
		CourseID:        uuid.New(),
		ChildFirstName:  "Jamie",
		ChildLastName:   "Doe",
		ChildBirth:      time.Date(2016, 4, 12, 0, 0, 0, 0, time.UTC),
		GradeLevel:      "3rd",
		AgreedToTerms:   true,
		PhotoRelease:    true,
		AmountPaidCents: 15000,
	}
}

func (b *RegistrationBuilder) WithCourseID(id uuid.UUID) *RegistrationBuilder {
	b.CourseID = id
	return b
}

func (b *RegistrationBuilder) WithParentEmail(email string) *RegistrationBuilder {
	b.ParentEmail = email
	return b
}

func (b *RegistrationBuilder) WithDiscountCode(code string) *RegistrationBuilder {
	b.DiscountCode = &code
	return b
}

func (b *RegistrationBuilder) WithAgreedToTerms(agreed bool) *RegistrationBuilder {
	b.AgreedToTerms = agreed
	return b
}

func (b *RegistrationBuilder) WithAmountPaidCents(cents int64) *RegistrationBuilder {
	b.AmountPaidCents = cents
	return b
}

func (b *RegistrationBuilder) BuildRequestDTO() reqdto.CreateRegistrationRequest {
	req := reqdto.CreateRegistrationRequest{
		ParentInfo: reqdto.ParentInfo{
			Email:     b.ParentEmail,
			FirstName: "Alex",
			LastName:  "Doe",
			Phone:     "555-0101",
			Address:   "12 Main St",
			City:      "Springfield",
			State:     "IL",
			ZipCode:   "62701",
		},
		ChildInfo: reqdto.ChildInfo{
			FirstName:   b.ChildFirstName,
			LastName:    b.ChildLastName,
			DateOfBirth: b.ChildBirth,
			GradeLevel:  b.GradeLevel,
		},
		EmergencyContact: reqdto.EmergencyContact{
			Name:         "Sam Doe",
			Relationship: "Uncle",
			Phone:        "555-0102",
		},
		SelectedCourseID: b.CourseID,
		AgreedToTerms:    b.AgreedToTerms,
		PhotoRelease:     b.PhotoRelease,
		AmountPaid:       float64(b.AmountPaidCents) / 100,
	}
	if b.DiscountCode != nil {
		req.DiscountCode = &reqdto.DiscountCodeRef{Code: *b.DiscountCode}
	}
	return req
}

func (b *RegistrationBuilder) BuildInput() commands.EnrollmentInput {
	req := b.BuildRequestDTO()
	return req.ToInput()
}
