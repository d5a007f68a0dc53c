package response

import (
	"time"

	"enrollhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourseResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	AvailableSpots int       `json:"availableSpots"`
	StartDate      time.Time `json:"startDate"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromCourseView(cm *queries.CourseView) *CourseResponse {
	return &CourseResponse{
		ID:             cm.ID,
		Name:           cm.Name,
		Capacity:       cm.Capacity,
		AvailableSpots: cm.AvailableSpots,
		StartDate:      cm.StartDate,
		CreatedAt:      cm.CreatedAt,
	}
}
