//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"enrollhub/internal/handler/dto/request"
	"enrollhub/internal/handler/dto/response"
	"enrollhub/tests/common/dbtest"
	"enrollhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginStaff(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken, "Access token missing from login response")

	return res.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestStaff(t, db, email, role)
	return LoginStaff(t, router, email, "password123")
}
