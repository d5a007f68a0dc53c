package request

import (
	"math"
	"strings"
	"time"

	"enrollhub/internal/domain/account"
	"enrollhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type ParentInfo struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"required,max=30"`
	Address   string `json:"address" binding:"required,max=200"`
	City      string `json:"city" binding:"required,max=100"`
	State     string `json:"state" binding:"required,max=50"`
	ZipCode   string `json:"zipCode" binding:"required,max=20"`
}

type ChildInfo struct {
	FirstName    string    `json:"firstName" binding:"required,max=100"`
	LastName     string    `json:"lastName" binding:"required,max=100"`
	DateOfBirth  time.Time `json:"dateOfBirth" binding:"required"`
	GradeLevel   string    `json:"gradeLevel" binding:"required,max=50"`
	Allergies    *string   `json:"allergies,omitempty" binding:"omitempty,max=500"`
	SpecialNeeds *string   `json:"specialNeeds,omitempty" binding:"omitempty,max=500"`
}

type EmergencyContact struct {
	Name         string `json:"name" binding:"required,max=200"`
	Relationship string `json:"relationship" binding:"required,max=100"`
	Phone        string `json:"phone" binding:"required,max=30"`
}

type DiscountCodeRef struct {
	Code string `json:"code" binding:"required,max=20"`
}

type CreateRegistrationRequest struct {
	ParentInfo       ParentInfo       `json:"parentInfo" binding:"required"`
	ChildInfo        ChildInfo        `json:"childInfo" binding:"required"`
	EmergencyContact EmergencyContact `json:"emergencyContact" binding:"required"`
	SelectedCourseID uuid.UUID        `json:"selectedCourseId" binding:"required"`
	AgreedToTerms    bool             `json:"agreedToTerms"`
	PhotoRelease     bool             `json:"photoRelease"`
	DiscountCode     *DiscountCodeRef `json:"discountCode,omitempty"`
	AmountPaid       float64          `json:"amountPaid" binding:"min=0"`
}

// AmountPaidCents converts the wire amount (dollars) to the integer cents the
// domain carries. Rounded, not truncated: 149.999 from a lossy client is 15000.
func (r *CreateRegistrationRequest) AmountPaidCents() int64 {
	return int64(math.Round(r.AmountPaid * 100))
}

func (r *CreateRegistrationRequest) GetDiscountCode() *string {
	if r.DiscountCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(r.DiscountCode.Code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r *CreateRegistrationRequest) ToInput() commands.EnrollmentInput {
	return commands.EnrollmentInput{
		ParentEmail: r.ParentInfo.Email,
		ParentProfile: account.Profile{
			FirstName: r.ParentInfo.FirstName,
			LastName:  r.ParentInfo.LastName,
			Phone:     r.ParentInfo.Phone,
			Address:   r.ParentInfo.Address,
			City:      r.ParentInfo.City,
			State:     r.ParentInfo.State,
			ZipCode:   r.ParentInfo.ZipCode,
		},
		CourseID:            r.SelectedCourseID,
		ChildFirstName:      r.ChildInfo.FirstName,
		ChildLastName:       r.ChildInfo.LastName,
		ChildDateOfBirth:    r.ChildInfo.DateOfBirth,
		ChildGradeLevel:     r.ChildInfo.GradeLevel,
		ChildAllergies:      r.ChildInfo.Allergies,
		ChildSpecialNeeds:   r.ChildInfo.SpecialNeeds,
		ContactName:         r.EmergencyContact.Name,
		ContactRelationship: r.EmergencyContact.Relationship,
		ContactPhone:        r.EmergencyContact.Phone,
		AgreedToTerms:       r.AgreedToTerms,
		PhotoRelease:        r.PhotoRelease,
		DiscountCode:        r.GetDiscountCode(),
		AmountPaidCents:     r.AmountPaidCents(),
	}
}
