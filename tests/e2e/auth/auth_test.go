//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"enrollhub/internal/handler/dto/request"
	"enrollhub/internal/handler/dto/response"
	"enrollhub/tests/common/authtest"
	"enrollhub/tests/common/dbtest"
	"enrollhub/tests/common/httptest"
	"enrollhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: valid credentials return a token", func() {
		t := s.T()
		dbtest.CreateTestStaff(t, s.DB, "operator@example.com", "operator")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.LoginResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, "operator@example.com", res.Email)
		require.Equal(t, "operator", res.Role)
	})

	s.Run("Wrong password returns 401", func() {
		t := s.T()
		dbtest.CreateTestStaff(t, s.DB, "operator@example.com", "operator")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "operator@example.com", Password: "wrongpassword"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Unknown email returns 401", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Malformed body returns 400", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "not-an-email", Password: "short"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestProtectedAccess() {
	s.Run("Issued token grants access to protected routes", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Chess Club", 8, time.Now().Add(24*time.Hour))
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", "operator")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/courses/"+courseID.String()+"/registrations", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Garbage token is rejected", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Chess Club", 8, time.Now().Add(24*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/courses/"+courseID.String()+"/registrations", nil, "not.a.token")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
