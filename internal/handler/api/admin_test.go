//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"aqualux-api/internal/domain/user"
	"aqualux-api/internal/handler/api"
	resdto "aqualux-api/internal/handler/dto/response"
	"aqualux-api/internal/pkg/clock"
	"aqualux-api/internal/usecase/queries"
	"aqualux-api/internal/usecase/shared"
	"aqualux-api/tests/common/builder"
	"aqualux-api/tests/common/httptest"
	queriesmock "aqualux-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockQueries,
		clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))

	// Mock authentication middleware for testing
	adminAuthMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("actor", shared.Actor{ID: uuid.New(), Email: "admin@aqualux.example", Role: user.RoleAdmin})
		c.Next()
	}

	// Setup routes
	s.router.GET("/admin/bookings", adminAuthMiddleware, s.handler.ListAllBookings)
	s.router.GET("/admin/bookings/export", adminAuthMiddleware, s.handler.ExportBookings)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestListAllBookings
// ================================================================================

func (s *AdminHandlerTestSuite) TestListAllBookings() {
	url := "/admin/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().WithStatus("confirmed").BuildView(),
	}

	s.Run("success: returns every booking without a filter", func() {
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), gomock.Any(), queries.AdminBookingFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: search and status combine into one filter", func() {
		expected := queries.AdminBookingFilter{SearchTerm: "sarah", Status: "confirmed"}
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), gomock.Any(), expected).
			Return(views[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?search=sarah&status=confirmed", nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("confirmed", response[0].Status)
	})

	s.Run("error: 400 Bad Request for an unknown status filter", func() {
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), gomock.Any(), queries.AdminBookingFilter{Status: "archived"}).
			Return(nil, queries.ErrInvalidFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=archived", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: 403 Forbidden when the usecase denies access", func() {
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), gomock.Any(), queries.AdminBookingFilter{}).
			Return(nil, queries.ErrAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

// ================================================================================
// TestExportBookings
// ================================================================================

func (s *AdminHandlerTestSuite) TestExportBookings() {
	url := "/admin/bookings/export"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithSpecialRequests("Sea view room please").BuildView(),
		builder.NewBookingBuilder().WithStatus("confirmed").BuildView(),
	}

	s.Run("success: returns an xlsx attachment", func() {
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), gomock.Any(), queries.AdminBookingFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			rec.Header().Get("Content-Type"))
		s.Contains(rec.Header().Get("Content-Disposition"), `bookings_20260901_120000.xlsx`)

		workbook, err := excelize.OpenReader(rec.Body)
		s.Require().NoError(err)
		defer workbook.Close()

		rows, err := workbook.GetRows("Bookings")
		s.Require().NoError(err)
		s.Require().Len(rows, 3)
		s.Equal("Customer", rows[0][4])
		s.Equal(views[0].CustomerName, rows[1][4])
		s.Equal("confirmed", rows[2][9])
	})

	s.Run("success: the filter applies to the export too", func() {
		expected := queries.AdminBookingFilter{Status: "pending"}
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), gomock.Any(), expected).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?status=pending", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 403 Forbidden when the usecase denies access", func() {
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any(), gomock.Any(), queries.AdminBookingFilter{}).
			Return(nil, queries.ErrAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}
