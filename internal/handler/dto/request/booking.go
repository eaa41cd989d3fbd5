package request

import (
	"strings"

	"aqualux-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	Time            string    `json:"time" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerEmail   string    `json:"customer_email" binding:"required,email"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:       r.ServiceID,
		Date:            strings.TrimSpace(r.Date),
		Time:            strings.TrimSpace(r.Time),
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerEmail:   strings.TrimSpace(r.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(r.CustomerPhone),
		SpecialRequests: r.GetSpecialRequests(),
	}
}

func (r CreateBookingRequest) GetSpecialRequests() *string {
	if r.SpecialRequests == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.SpecialRequests)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type RescheduleBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// UpdateStatusRequest targets a specific lifecycle action rather than a raw
// status value, so the state machine stays the single decision point.
type UpdateStatusRequest struct {
	Action string `json:"action" binding:"required,oneof=confirm cancel complete"`
}

const (
	ActionConfirm  = "confirm"
	ActionCancel   = "cancel"
	ActionComplete = "complete"
)
