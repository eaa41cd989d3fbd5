package response

import (
	"time"

	"aqualux-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	ServiceID          uuid.UUID `json:"serviceId"`
	ServiceName        string    `json:"serviceName"`
	ServicePrice       int32     `json:"servicePrice"`
	ServiceDurationMin int32     `json:"serviceDurationMin"`
	CustomerName       string    `json:"customerName"`
	CustomerEmail      string    `json:"customerEmail"`
	CustomerPhone      string    `json:"customerPhone"`
	AppointmentDate    string    `json:"appointmentDate"`
	AppointmentTime    string    `json:"appointmentTime"`
	SpecialRequests    *string   `json:"specialRequests,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	ServiceName     string    `json:"serviceName"`
	ServicePrice    int32     `json:"servicePrice"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	resp := &BookingListResponse{}
	_ = copier.Copy(resp, item)
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(views))
	for i, v := range views {
		resp[i] = FromBookingView(v)
	}
	return resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	resp := make([]*BookingListResponse, len(items))
	for i, item := range items {
		resp[i] = FromBookingListItem(item)
	}
	return resp
}
