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
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	enrollmentCommands  commands.EnrollmentCommands
	registrationQueries queries.RegistrationQueries
}

func NewEnrollmentHandler(
	enrollmentCommands commands.EnrollmentCommands,
	registrationQueries queries.RegistrationQueries,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentCommands:  enrollmentCommands,
		registrationQueries: registrationQueries,
	}
}

// @Summary Create registration
// @Description Enroll a child in a course, resolving the parent account and consuming an optional discount code atomically
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRegistrationRequest true "Registration request"
// @Success 201 {object} resdto.CreateRegistrationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /registrations [post]
func (h *EnrollmentHandler) CreateRegistration(c *gin.Context) {
	var req reqdto.CreateRegistrationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.enrollmentCommands.CreateRegistration(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTermsNotAgreed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Terms and conditions must be agreed to", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data", nil)
		case errors.Is(err, errs.ErrCourseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Course not found", nil)
		case errors.Is(err, errs.ErrCourseFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "Course is full", nil)
		case errors.Is(err, errs.ErrCourseAlreadyStarted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Course has already started", nil)
		case errors.Is(err, errs.ErrDiscountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount code not found", nil)
		case errors.Is(err, errs.ErrDiscountNotYetActive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount code is not yet active", nil)
		case errors.Is(err, errs.ErrDiscountExpired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount code has expired", nil)
		case errors.Is(err, errs.ErrDiscountCapReached):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount code usage limit reached", nil)
		case errors.Is(err, errs.ErrConfirmationExhausted):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Could not generate a confirmation number, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEnrollmentResult(result))
}

// @Summary Get registration
// @Description Get registration by ID
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} resdto.RegistrationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations/{id} [get]
func (h *EnrollmentHandler) GetRegistration(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration ID format", nil)
		return
	}

	view, err := h.registrationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRegistrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Registration not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRegistrationView(view))
}

// @Summary List course registrations
// @Description List all registrations for a course
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {array} resdto.RegistrationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /courses/{id}/registrations [get]
func (h *EnrollmentHandler) ListCourseRegistrations(c *gin.Context) {
	idStr := c.Param("id")
	courseID, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course ID format", nil)
		return
	}

	items, err := h.registrationQueries.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.RegistrationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromRegistrationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}
