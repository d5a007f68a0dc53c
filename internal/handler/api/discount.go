package api

import (
	"errors"
	"net/http"

	reqdto "enrollhub/internal/handler/dto/request"
	resdto "enrollhub/internal/handler/dto/response"
	"enrollhub/internal/handler/httperr"
	"enrollhub/internal/pkg/errs"
	"enrollhub/internal/usecase/commands"
	"enrollhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	discountQueries queries.DiscountQueries
	adminCommands   commands.AdminCommands
}

func NewDiscountHandler(discountQueries queries.DiscountQueries, adminCommands commands.AdminCommands) *DiscountHandler {
	return &DiscountHandler{
		discountQueries: discountQueries,
		adminCommands:   adminCommands,
	}
}

// @Summary Validate discount code
// @Description Check a discount code without consuming a use
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateDiscountRequest true "Discount code"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/validate [post]
func (h *DiscountHandler) ValidateDiscount(c *gin.Context) {
	var req reqdto.ValidateDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.discountQueries.Validate(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDiscountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount code not found", nil)
		case errors.Is(err, errs.ErrDiscountNotYetActive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount code is not yet active", nil)
		case errors.Is(err, errs.ErrDiscountExpired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount code has expired", nil)
		case errors.Is(err, errs.ErrDiscountCapReached):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount code usage limit reached", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountView(view))
}

// @Summary Create discount code
// @Description Create a new discount code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRequest true "Discount request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/discounts [post]
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.adminCommands.CreateDiscount(c.Request.Context(), commands.CreateDiscountInput{
		Code:        req.Code,
		Description: req.Description,
		Percentage:  req.Percentage,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxUses:     req.MaxUses,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDiscountCodeTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Discount code already exists", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
