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

type CourseHandler struct {
	courseQueries queries.CourseQueries
	adminCommands commands.AdminCommands
}

func NewCourseHandler(courseQueries queries.CourseQueries, adminCommands commands.AdminCommands) *CourseHandler {
	return &CourseHandler{
		courseQueries: courseQueries,
		adminCommands: adminCommands,
	}
}

// @Summary List courses
// @Description List all courses with remaining seat counts
// @Tags courses
// @Produce json
// @Success 200 {array} resdto.CourseResponse
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	views, err := h.courseQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.CourseResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromCourseView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get course
// @Description Get a course by ID with its remaining seat count
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course ID format", nil)
		return
	}

	view, err := h.courseQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Course not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourseView(view))
}

// @Summary Create course
// @Description Create a new course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourseRequest true "Course request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.adminCommands.CreateCourse(c.Request.Context(), commands.CreateCourseInput{
		Name:      req.Name,
		Capacity:  req.Capacity,
		StartDate: req.StartDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
