//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"aqualux-api/internal/domain/user"
	"aqualux-api/internal/handler/dto/response"
	"aqualux-api/tests/common/dbtest"
	"aqualux-api/tests/common/httptest"
	"aqualux-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	bookingsURL = "/api/bookings"
	adminURL    = "/api/admin/bookings"

	adminEmail    = "admin@aqualux.example"
	customerEmail = "sarah.mitchell@example.com"
	strangerEmail = "james.carter@example.com"

	testPassword = "password123!"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "Admin", adminEmail, string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "Sarah Mitchell", customerEmail, string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "James Carter", strangerEmail, string(user.RoleCustomer))
}

func (s *bookingSuite) login(email string) string {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
		map[string]string{"email": email, "password": testPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func (s *bookingSuite) createBooking(token, email string) map[string]any {
	t := s.T()
	serviceID := dbtest.FindSeededService(t, s.DB, "Hydrotherapy Supreme")

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
		"service_id":     serviceID.String(),
		"date":           "2026-10-15",
		"time":           "10:00",
		"customer_name":  "Sarah Mitchell",
		"customer_email": email,
		"customer_phone": "+1-555-0142",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, "create failed: %s", rec.Body.String())

	var booking map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	return booking
}

func (s *bookingSuite) updateStatus(token, id, action string) (code int, body map[string]any) {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
		bookingsURL+"/"+id+"/status", map[string]string{"action": action}, token)

	body = map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec.Code, body
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("pending booking moves through confirm, reschedule and complete", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		adminToken := s.login(adminEmail)

		booking := s.createBooking(customerToken, customerEmail)
		id := booking["id"].(string)
		require.Equal(t, "pending", booking["status"])
		require.Equal(t, "Hydrotherapy Supreme", booking["serviceName"])
		require.Equal(t, float64(180), booking["servicePrice"])
		require.Equal(t, float64(90), booking["serviceDurationMin"])

		detail := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+id, nil, customerToken)
		require.Equal(t, http.StatusOK, detail.Code)

		var actualRes response.BookingResponse
		require.NoError(t, json.Unmarshal(detail.Body.Bytes(), &actualRes))

		expected := &response.BookingResponse{
			ServiceName:        "Hydrotherapy Supreme",
			ServicePrice:       180,
			ServiceDurationMin: 90,
			CustomerName:       "Sarah Mitchell",
			CustomerEmail:      customerEmail,
			CustomerPhone:      "+1-555-0142",
			AppointmentDate:    "2026-10-15",
			AppointmentTime:    "10:00",
			Status:             "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "ServiceID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// Customers cannot confirm their own booking.
		code, _ := s.updateStatus(customerToken, id, "confirm")
		require.Equal(t, http.StatusForbidden, code)

		code, body := s.updateStatus(adminToken, id, "confirm")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "confirmed", body["status"])

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingsURL+"/"+id+"/reschedule",
			map[string]string{"date": "2026-10-20", "time": "14:30"}, customerToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var moved map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &moved))
		require.Equal(t, "rescheduled", moved["status"])
		require.Equal(t, "2026-10-20", moved["appointmentDate"])

		// A rescheduled booking needs re-confirmation before completion.
		code, _ = s.updateStatus(adminToken, id, "complete")
		require.Equal(t, http.StatusConflict, code)

		code, _ = s.updateStatus(adminToken, id, "confirm")
		require.Equal(t, http.StatusOK, code)

		code, body = s.updateStatus(adminToken, id, "complete")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "completed", body["status"])

		// Completed is terminal.
		code, _ = s.updateStatus(adminToken, id, "cancel")
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("owner can cancel a pending booking", func() {
		t := s.T()
		customerToken := s.login(customerEmail)

		booking := s.createBooking(customerToken, customerEmail)
		id := booking["id"].(string)

		code, body := s.updateStatus(customerToken, id, "cancel")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "cancelled", body["status"])
	})

	s.Run("customers cannot book under someone else's email", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		serviceID := dbtest.FindSeededService(t, s.DB, "Thermal Equilibrium")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"service_id":     serviceID.String(),
			"date":           "2026-10-15",
			"time":           "10:00",
			"customer_name":  "James Carter",
			"customer_email": strangerEmail,
			"customer_phone": "+1-555-0100",
		}, customerToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	s.Run("booking an unknown service returns 404", func() {
		t := s.T()
		customerToken := s.login(customerEmail)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"service_id":     uuid.New().String(),
			"date":           "2026-10-15",
			"time":           "10:00",
			"customer_name":  "Sarah Mitchell",
			"customer_email": customerEmail,
			"customer_phone": "+1-555-0142",
		}, customerToken)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func (s *bookingSuite) TestOwnerIsolation() {
	s.Run("owners see only their own bookings", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		strangerToken := s.login(strangerEmail)

		mine := s.createBooking(customerToken, customerEmail)
		s.createBooking(strangerToken, strangerEmail)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/my", nil, customerToken)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		require.Equal(t, mine["id"], list[0]["id"])
	})

	s.Run("anonymous callers get an empty list", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/my", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Empty(t, list)
	})

	s.Run("strangers cannot read someone else's booking", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		strangerToken := s.login(strangerEmail)

		booking := s.createBooking(customerToken, customerEmail)
		url := bookingsURL + "/" + booking["id"].(string)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, strangerToken)
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, customerToken)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func (s *bookingSuite) TestAdminView() {
	s.Run("search and status filters combine with AND", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		strangerToken := s.login(strangerEmail)
		adminToken := s.login(adminEmail)

		sarahs := s.createBooking(customerToken, customerEmail)
		s.createBooking(strangerToken, strangerEmail)

		_, _ = s.updateStatus(adminToken, sarahs["id"].(string), "confirm")

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			adminURL+"?search=sarah&status=confirmed", nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		require.Equal(t, sarahs["id"], list[0]["id"])

		// Same search without the status match yields nothing confirmed for James.
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			adminURL+"?search=james&status=confirmed", nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Empty(t, list)
	})

	s.Run("search is a literal substring match", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		adminToken := s.login(adminEmail)

		s.createBooking(customerToken, customerEmail)

		// LIKE metacharacters in the term must not act as wildcards.
		for _, term := range []string{"s%h", "s_rah", "100%"} {
			rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
				adminURL+"?search="+url.QueryEscape(term), nil, adminToken)
			require.Equal(t, http.StatusOK, rec.Code)

			var list []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
			require.Empty(t, list, "term %q should not match", term)
		}
	})

	s.Run("unknown status filter is rejected", func() {
		t := s.T()
		adminToken := s.login(adminEmail)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			adminURL+"?status=archived", nil, adminToken)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	s.Run("customers cannot reach the admin view", func() {
		t := s.T()
		customerToken := s.login(customerEmail)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL, nil, customerToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	s.Run("export downloads an xlsx workbook", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		adminToken := s.login(adminEmail)

		s.createBooking(customerToken, customerEmail)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/export", nil, adminToken)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
		require.NotEmpty(t, rec.Body.Bytes())
	})

	s.Run("admin deletes a booking outright", func() {
		t := s.T()
		customerToken := s.login(customerEmail)
		adminToken := s.login(adminEmail)

		booking := s.createBooking(customerToken, customerEmail)
		url := bookingsURL + "/" + booking["id"].(string)

		rec := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, customerToken)
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, adminToken)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, adminToken)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
