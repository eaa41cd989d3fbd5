//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"aqualux-api/internal/handler/api"
	resdto "aqualux-api/internal/handler/dto/response"
	"aqualux-api/internal/usecase/queries"
	"aqualux-api/tests/common/builder"
	"aqualux-api/tests/common/httptest"
	queriesmock "aqualux-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	// Setup routes
	s.router.GET("/services", s.handler.ListServices)
	s.router.GET("/services/:id", s.handler.GetService)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListServices() {
	url := "/services"

	views := []*queries.ServiceView{
		builder.NewServiceBuilder().BuildView(),
		builder.NewServiceBuilder().WithTitle("Thermal Equilibrium").BuildView(),
	}

	s.Run("success: returns the catalog", func() {
		s.mockQueries.EXPECT().ListServices(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].Title, response[0].Title)
		s.Equal(views[0].Features, response[0].Features)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListServices(gomock.Any()).
			Return(nil, queries.ErrQueryFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestGetService() {
	serviceID := uuid.New()
	url := "/services/" + serviceID.String()

	s.Run("success: returns 200 OK with ServiceResponse", func() {
		view := builder.NewServiceBuilder().BuildView()
		view.ID = serviceID
		s.mockQueries.EXPECT().GetService(gomock.Any(), serviceID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(serviceID, response.ID)
		s.Equal(view.Price, response.Price)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID format")
	})

	s.Run("error: 404 Not Found for missing service", func() {
		s.mockQueries.EXPECT().GetService(gomock.Any(), serviceID).
			Return(nil, queries.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}
