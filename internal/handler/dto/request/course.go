package request

import "time"

type CreateCourseRequest struct {
	Name      string    `json:"name" binding:"required,max=200"`
	Capacity  int       `json:"capacity" binding:"required,min=1"`
	StartDate time.Time `json:"startDate" binding:"required"`
}
