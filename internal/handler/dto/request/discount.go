package request

import "time"

type ValidateDiscountRequest struct {
	Code string `json:"code" binding:"required,max=20"`
}

type CreateDiscountRequest struct {
	Code        string     `json:"code" binding:"required,max=20"`
	Description string     `json:"description" binding:"required,max=500"`
	Percentage  float64    `json:"percentage" binding:"required,gt=0,lte=100"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	MaxUses     *int       `json:"maxUses,omitempty" binding:"omitempty,min=1"`
}
