//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"enrollhub/internal/handler/api"
	resdto "enrollhub/internal/handler/dto/response"
	"enrollhub/internal/handler/httperr"
	"enrollhub/internal/pkg/errs"
	"enrollhub/internal/usecase/commands"
	"enrollhub/internal/usecase/queries"
	"enrollhub/tests/common/builder"
	"enrollhub/tests/common/httptest"
	commandsmock "enrollhub/tests/mock/commands"
	queriesmock "enrollhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EnrollmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEnrollmentCommands
	mockQueries  *queriesmock.MockRegistrationQueries
	handler      *api.EnrollmentHandler
}

func (s *EnrollmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEnrollmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRegistrationQueries(s.mockCtrl)
	s.handler = api.NewEnrollmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/registrations", s.handler.CreateRegistration)
	s.router.GET("/registrations/:id", s.handler.GetRegistration)
	s.router.GET("/courses/:id/registrations", s.handler.ListCourseRegistrations)
}

func (s *EnrollmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEnrollmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentHandlerTestSuite))
}

// ================================================================================
// TestCreateRegistration
// ================================================================================

func (s *EnrollmentHandlerTestSuite) TestCreateRegistration() {
	url := "/registrations"

	reqBody := builder.NewRegistrationBuilder().BuildRequestDTO()

	s.Run("success: returns 201 Created with confirmation payload", func() {
		expected := &commands.EnrollmentResult{
			ConfirmationNumber: "RB123456",
			RegistrationID:     uuid.New(),
			CourseID:           reqBody.SelectedCourseID,
			ParentEmail:        "parent@example.com",
		}
		s.mockCommands.EXPECT().CreateRegistration(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)

		var body resdto.CreateRegistrationResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(expected.ConfirmationNumber, body.ConfirmationNumber)
		s.Equal(expected.RegistrationID, body.RegistrationID)
		s.Equal(expected.CourseID, body.CourseID)
		s.Equal(expected.ParentEmail, body.ParentEmail)
	})

	s.Run("success: amountPaid binds as dollars and reaches the usecase in cents", func() {
		courseID := uuid.New()
		rawBody := map[string]any{
			"parentInfo": map[string]any{
				"email": "parent@example.com", "firstName": "Alex", "lastName": "Doe",
				"phone": "555-0101", "address": "12 Main St", "city": "Springfield",
				"state": "IL", "zipCode": "62701",
			},
			"childInfo": map[string]any{
				"firstName": "Jamie", "lastName": "Doe",
				"dateOfBirth": "2016-04-12T00:00:00Z", "gradeLevel": "3rd",
			},
			"emergencyContact": map[string]any{
				"name": "Sam Doe", "relationship": "Uncle", "phone": "555-0102",
			},
			"selectedCourseId": courseID.String(),
			"agreedToTerms":    true,
			"photoRelease":     true,
			"amountPaid":       149.99,
		}

		var captured commands.EnrollmentInput
		s.mockCommands.EXPECT().CreateRegistration(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input commands.EnrollmentInput) (*commands.EnrollmentResult, error) {
				captured = input
				return &commands.EnrollmentResult{
					ConfirmationNumber: "RB777777",
					RegistrationID:     uuid.New(),
					CourseID:           courseID,
					ParentEmail:        "parent@example.com",
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, rawBody, "")
		s.Equal(http.StatusCreated, rec.Code)
		s.Equal(int64(14999), captured.AmountPaidCents)
	})

	s.Run("error: malformed body returns 400 with the error envelope", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"parentInfo": "nope"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)

		var body httperr.Response
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Invalid request format", body.Error.Message)
	})

	s.Run("error: rejection mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"terms not agreed", errs.ErrTermsNotAgreed, http.StatusBadRequest},
			{"domain validation", errs.ErrDomainValidation, http.StatusBadRequest},
			{"course not found", errs.ErrCourseNotFound, http.StatusNotFound},
			{"course full", errs.ErrCourseFull, http.StatusConflict},
			{"course already started", errs.ErrCourseAlreadyStarted, http.StatusConflict},
			{"discount not found", errs.ErrDiscountNotFound, http.StatusNotFound},
			{"discount not yet active", errs.ErrDiscountNotYetActive, http.StatusBadRequest},
			{"discount expired", errs.ErrDiscountExpired, http.StatusBadRequest},
			{"discount cap reached", errs.ErrDiscountCapReached, http.StatusBadRequest},
			{"confirmation exhausted", errs.ErrConfirmationExhausted, http.StatusServiceUnavailable},
			{"storage failure", errs.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRegistration(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

// ================================================================================
// TestGetRegistration
// ================================================================================

func (s *EnrollmentHandlerTestSuite) TestGetRegistration() {
	registrationID := uuid.New()
	url := "/registrations/" + registrationID.String()

	s.Run("success: returns 200 with the registration view", func() {
		view := &queries.RegistrationView{
			ID:                 registrationID,
			ConfirmationNumber: "RB654321",
			CourseID:           uuid.New(),
			CourseName:         "Robotics Camp",
			ParentEmail:        "parent@example.com",
			PaymentStatus:      "completed",
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), registrationID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.RegistrationResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("RB654321", body.ConfirmationNumber)
		s.Equal("Robotics Camp", body.CourseName)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/registrations/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), registrationID).
			Return(nil, errs.ErrRegistrationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestListCourseRegistrations
// ================================================================================

func (s *EnrollmentHandlerTestSuite) TestListCourseRegistrations() {
	courseID := uuid.New()
	url := "/courses/" + courseID.String() + "/registrations"

	s.Run("success: returns the roster", func() {
		items := []*queries.RegistrationListItem{
			{ID: uuid.New(), ConfirmationNumber: "RB000001", ChildFirstName: "Jamie", PaymentStatus: "completed"},
			{ID: uuid.New(), ConfirmationNumber: "RB000002", ChildFirstName: "Robin", PaymentStatus: "pending"},
		}
		s.mockQueries.EXPECT().ListByCourse(gomock.Any(), courseID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var body []resdto.RegistrationListResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Len(body, 2)
		s.Equal("RB000001", body[0].ConfirmationNumber)
	})

	s.Run("error: 400 on malformed course id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/xyz/registrations", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
