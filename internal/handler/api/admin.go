package api

import (
	"fmt"
	"net/http"
	"strings"

	"aqualux-api/internal/handler/dto/response"
	"aqualux-api/internal/handler/httperr"
	"aqualux-api/internal/handler/middleware"
	"aqualux-api/internal/infra/export"
	"aqualux-api/internal/pkg/clock"
	"aqualux-api/internal/pkg/errs"
	"aqualux-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewAdminHandler(bookingQueries queries.BookingQueries, clk clock.Clock) *AdminHandler {
	return &AdminHandler{
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func filterFromQuery(c *gin.Context) queries.AdminBookingFilter {
	return queries.AdminBookingFilter{
		SearchTerm: strings.TrimSpace(c.Query("search")),
		Status:     strings.TrimSpace(c.Query("status")),
	}
}

// @Summary List all bookings
// @Description List bookings across all customers with optional search and status filter
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring over customer name, email and service name"
// @Param status query string false "Exact status filter"
// @Success 200 {array} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListAllBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.bookingQueries.ListAllBookings(c.Request.Context(), actor, filterFromQuery(c))
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBookingViews(views))
}

// @Summary Export bookings
// @Description Download the (filtered) booking list as an xlsx workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring over customer name, email and service name"
// @Param status query string false "Exact status filter"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/export [get]
func (h *AdminHandler) ExportBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.bookingQueries.ListAllBookings(c.Request.Context(), actor, filterFromQuery(c))
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	data, err := export.BookingsToExcel(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build export")
		return
	}

	fileName := export.ExportFileName(h.clock.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *AdminHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrAccessDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied")
	case errs.Is(err, queries.ErrInvalidFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
