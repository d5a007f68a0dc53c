//go:build e2e

package enrollment_test

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"enrollhub/internal/handler/dto/response"
	"enrollhub/tests/common/builder"
	"enrollhub/tests/common/dbtest"
	"enrollhub/tests/common/httptest"
	"enrollhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const registrationsURL = "/api/registrations"

type EnrollmentSuite struct {
	e2e.SharedSuite
}

func TestEnrollmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EnrollmentSuite))
}

func (s *EnrollmentSuite) futureStart() time.Time {
	return time.Now().Add(30 * 24 * time.Hour)
}

// =============================================================================
// TestCreateRegistration - single submission behavior
// =============================================================================

func (s *EnrollmentSuite) TestCreateRegistration() {
	s.Run("Normal case: full enrollment round trip", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Robotics Camp", 10, s.futureStart())

		reqBody := builder.NewRegistrationBuilder().WithCourseID(courseID).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreateRegistrationResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &created)
		require.Regexp(t, regexp.MustCompile(`^RB\d{6}$`), created.ConfirmationNumber)
		require.Equal(t, courseID, created.CourseID)
		require.Equal(t, "parent@example.com", created.ParentEmail)

		require.Equal(t, 1, dbtest.CountRegistrations(t, s.DB, courseID))
	})

	s.Run("Same email reuses the parent account", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Robotics Camp", 10, s.futureStart())

		first := builder.NewRegistrationBuilder().WithCourseID(courseID).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, first, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		second := builder.NewRegistrationBuilder().WithCourseID(courseID).BuildRequestDTO()
		second.ChildInfo.FirstName = "Robin"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, second, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var parentCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM parent_accounts WHERE email = $1", "parent@example.com").Scan(&parentCount)
		require.NoError(t, err)
		require.Equal(t, 1, parentCount)
	})

	s.Run("Terms not agreed leaves no rows behind", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Robotics Camp", 10, s.futureStart())

		reqBody := builder.NewRegistrationBuilder().
			WithCourseID(courseID).
			WithAgreedToTerms(false).
			BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		require.Equal(t, 0, dbtest.CountRegistrations(t, s.DB, courseID))

		var parentCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM parent_accounts").Scan(&parentCount)
		require.NoError(t, err)
		require.Equal(t, 0, parentCount)
	})

	s.Run("Unknown course returns 404", func() {
		t := s.T()

		reqBody := builder.NewRegistrationBuilder().WithCourseID(uuid.New()).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, reqBody, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Started course returns 409", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Robotics Camp", 10, time.Now().Add(-time.Hour))

		reqBody := builder.NewRegistrationBuilder().WithCourseID(courseID).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Valid discount is consumed exactly once", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Robotics Camp", 10, s.futureStart())
		maxUses := 3
		discountID := dbtest.CreateTestDiscount(t, s.DB, "SUMMER25", 25, nil, nil, &maxUses)

		reqBody := builder.NewRegistrationBuilder().
			WithCourseID(courseID).
			WithDiscountCode("SUMMER25").
			BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		require.Equal(t, 1, dbtest.DiscountUses(t, s.DB, discountID))
	})

	s.Run("Expired discount blocks the whole transaction", func() {
		t := s.T()
		courseID := dbtest.CreateTestCourse(t, s.DB, "Robotics Camp", 10, s.futureStart())
		start := time.Now().Add(-48 * time.Hour)
		end := time.Now().Add(-24 * time.Hour)
		discountID := dbtest.CreateTestDiscount(t, s.DB, "OLDCODE", 25, &start, &end, nil)

		reqBody := builder.NewRegistrationBuilder().
			WithCourseID(courseID).
			WithDiscountCode("OLDCODE").
			BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registrationsURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// No seat and no discount use may survive a rejected submission.
		require.Equal(t, 0, dbtest.CountRegistrations(t, s.DB, courseID))
		require.Equal(t, 0, dbtest.DiscountUses(t, s.DB, discountID))
	})
}

// =============================================================================
// TestConcurrency - race closure under parallel submissions
// =============================================================================

type submissionResult struct {
	code int
	body string
}

func (s *EnrollmentSuite) submitConcurrently(n int, build func(i int) any) []submissionResult {
	results := make([]submissionResult, n)
	var wg sync.WaitGroup
	var start sync.WaitGroup
	start.Add(1)

	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start.Wait()
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registrationsURL, build(i), "")
			results[i] = submissionResult{code: w.Code, body: w.Body.String()}
		}(i)
	}

	start.Done()
	wg.Wait()
	return results
}

func countCodes(results []submissionResult) map[int]int {
	counts := make(map[int]int)
	for _, r := range results {
		counts[r.code]++
	}
	return counts
}

func (s *EnrollmentSuite) TestConcurrency() {
	s.Run("Capacity race: exactly K of N submissions win the seats", func() {
		t := s.T()
		const capacity, submissions = 5, 20
		courseID := dbtest.CreateTestCourse(t, s.DB, "Popular Camp", capacity, s.futureStart())

		results := s.submitConcurrently(submissions, func(i int) any {
			return builder.NewRegistrationBuilder().
				WithCourseID(courseID).
				WithParentEmail(fmt.Sprintf("parent%d@example.com", i)).
				BuildRequestDTO()
		})

		counts := countCodes(results)
		require.Equal(t, capacity, counts[http.StatusCreated], "results: %+v", counts)
		require.Equal(t, submissions-capacity, counts[http.StatusConflict], "results: %+v", counts)

		require.Equal(t, capacity, dbtest.CountRegistrations(t, s.DB, courseID))
	})

	s.Run("Discount cap race: exactly M uses are consumed", func() {
		t := s.T()
		const maxUses, submissions = 5, 10
		courseID := dbtest.CreateTestCourse(t, s.DB, "Big Camp", 100, s.futureStart())
		uses := maxUses
		discountID := dbtest.CreateTestDiscount(t, s.DB, "LIMITED5", 50, nil, nil, &uses)

		results := s.submitConcurrently(submissions, func(i int) any {
			return builder.NewRegistrationBuilder().
				WithCourseID(courseID).
				WithParentEmail(fmt.Sprintf("parent%d@example.com", i)).
				WithDiscountCode("LIMITED5").
				BuildRequestDTO()
		})

		counts := countCodes(results)
		require.Equal(t, maxUses, counts[http.StatusCreated], "results: %+v", counts)
		require.Equal(t, submissions-maxUses, counts[http.StatusBadRequest], "results: %+v", counts)

		require.Equal(t, maxUses, dbtest.DiscountUses(t, s.DB, discountID))
		// A rejected discount must not leave a registration behind.
		require.Equal(t, maxUses, dbtest.CountRegistrations(t, s.DB, courseID))
	})

	s.Run("Parent identity race: one account for the same email", func() {
		t := s.T()
		const submissions = 8
		courseID := dbtest.CreateTestCourse(t, s.DB, "Shared Camp", 100, s.futureStart())

		results := s.submitConcurrently(submissions, func(i int) any {
			req := builder.NewRegistrationBuilder().
				WithCourseID(courseID).
				WithParentEmail("shared@example.com").
				BuildRequestDTO()
			req.ChildInfo.FirstName = fmt.Sprintf("Child%d", i)
			return req
		})

		counts := countCodes(results)
		require.Equal(t, submissions, counts[http.StatusCreated], "results: %+v", counts)

		var parentCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM parent_accounts WHERE email = $1", "shared@example.com").Scan(&parentCount)
		require.NoError(t, err)
		require.Equal(t, 1, parentCount)
	})

	s.Run("Confirmation numbers stay unique under load", func() {
		t := s.T()
		const submissions = 25
		courseID := dbtest.CreateTestCourse(t, s.DB, "Busy Camp", 100, s.futureStart())

		results := s.submitConcurrently(submissions, func(i int) any {
			return builder.NewRegistrationBuilder().
				WithCourseID(courseID).
				WithParentEmail(fmt.Sprintf("parent%d@example.com", i)).
				BuildRequestDTO()
		})

		counts := countCodes(results)
		require.Equal(t, submissions, counts[http.StatusCreated], "results: %+v", counts)

		var distinct int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(DISTINCT confirmation_number) FROM registrations WHERE course_id = $1", courseID).Scan(&distinct)
		require.NoError(t, err)
		require.Equal(t, submissions, distinct)
	})
}
