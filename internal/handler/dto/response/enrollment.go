package response

import (
	"time"

	"enrollhub/internal/usecase/commands"
	"enrollhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateRegistrationResponse struct {
	ConfirmationNumber string    `json:"confirmationNumber"`
	RegistrationID     uuid.UUID `json:"registrationId"`
	CourseID           uuid.UUID `json:"courseId"`
	ParentEmail        string    `json:"parentEmail"`
}

type RegistrationResponse struct {
	ID                 uuid.UUID `json:"id"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	CourseID           uuid.UUID `json:"courseId"`
	CourseName         string    `json:"courseName"`
	ParentID           uuid.UUID `json:"parentId"`
	ParentEmail        string    `json:"parentEmail"`
	ChildFirstName     string    `json:"childFirstName"`
	ChildLastName      string    `json:"childLastName"`
	DiscountCode       *string   `json:"discountCode,omitempty"`
	AmountPaidCents    int64     `json:"amountPaidCents"`
	PaymentStatus      string    `json:"paymentStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

type RegistrationListResponse struct {
	ID                 uuid.UUID `json:"id"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	ChildFirstName     string    `json:"childFirstName"`
	ChildLastName      string    `json:"childLastName"`
	ParentEmail        string    `json:"parentEmail"`
	PaymentStatus      string    `json:"paymentStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromEnrollmentResult(r *commands.EnrollmentResult) *CreateRegistrationResponse {
	return &CreateRegistrationResponse{
		ConfirmationNumber: r.ConfirmationNumber,
		RegistrationID:     r.RegistrationID,
		CourseID:           r.CourseID,
		ParentEmail:        r.ParentEmail,
	}
}

func FromRegistrationView(rm *queries.RegistrationView) *RegistrationResponse {
	return &RegistrationResponse{
		ID:                 rm.ID,
		ConfirmationNumber: rm.ConfirmationNumber,
		CourseID:           rm.CourseID,
		CourseName:         rm.CourseName,
		ParentID:           rm.ParentID,
		ParentEmail:        rm.ParentEmail,
		ChildFirstName:     rm.ChildFirstName,
		ChildLastName:      rm.ChildLastName,
		DiscountCode:       rm.DiscountCode,
		AmountPaidCents:    rm.AmountPaidCents,
		PaymentStatus:      rm.PaymentStatus,
		CreatedAt:          rm.CreatedAt,
	}
}

func FromRegistrationListItem(rm *queries.RegistrationListItem) *RegistrationListResponse {
	return &RegistrationListResponse{
		ID:                 rm.ID,
		ConfirmationNumber: rm.ConfirmationNumber,
		ChildFirstName:     rm.ChildFirstName,
		ChildLastName:      rm.ChildLastName,
		ParentEmail:        rm.ParentEmail,
		PaymentStatus:      rm.PaymentStatus,
		CreatedAt:          rm.CreatedAt,
	}
}
