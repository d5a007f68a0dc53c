package response

import (
	"enrollhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountResponse struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"code"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discountPercentage"`
}

func FromDiscountView(dm *queries.DiscountView) *DiscountResponse {
	return &DiscountResponse{
		ID:                 dm.ID,
		Code:               dm.Code,
		Description:        dm.Description,
		DiscountPercentage: dm.DiscountPercentage,
	}
}
