//go:build unit || e2e

package builder

import (
	"time"

	"aqualux-api/internal/domain/booking"
	"aqualux-api/internal/domain/user"
	"aqualux-api/internal/usecase/commands"
	"aqualux-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ServiceID          uuid.UUID
	ServiceName        string
	ServicePrice       int32
	ServiceDurationMin int32
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Date               string
	Time               string
	SpecialRequests    *string
	Status             string
	Trusted            bool
	Now                time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ServiceID:          uuid.New(),
		ServiceName:        "Hydrotherapy Supreme",
		ServicePrice:       180,
		ServiceDurationMin: 90,
		CustomerName:       "Sarah Mitchell",
		CustomerEmail:      "sarah.mitchell@example.com",
		CustomerPhone:      "+1-555-0142",
		Date:               "2026-10-15",
		Time:               "10:00",
		Status:             "pending",
		Trusted:            false,
		Now:                time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	email, err := user.NewEmail(b.CustomerEmail)
	if err != nil {
		return nil, err
	}

	contact, err := booking.NewContact(b.CustomerName, email, b.CustomerPhone)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewSlot(b.Date, b.Time)
	if err != nil {
		return nil, err
	}

	specialRequests := ""
	if b.SpecialRequests != nil {
		specialRequests = *b.SpecialRequests
	}

	return booking.NewBooking(
		b.ServiceID,
		booking.ServiceSnapshot{Name: b.ServiceName, Price: b.ServicePrice, DurationMin: b.ServiceDurationMin},
		contact,
		slot,
		specialRequests,
		b.Trusted,
		b.Now,
	), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                 uuid.New(),
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		ServiceDurationMin: b.ServiceDurationMin,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		AppointmentDate:    b.Date,
		AppointmentTime:    b.Time,
		SpecialRequests:    b.SpecialRequests,
		Status:             b.Status,
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:              uuid.New(),
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		AppointmentDate: b.Date,
		AppointmentTime: b.Time,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		CreatedAt:       b.Now,
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:       b.ServiceID,
		Date:            b.Date,
		Time:            b.Time,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		SpecialRequests: b.SpecialRequests,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithService(name string, price, durationMin int32) *BookingBuilder {
	b.ServiceName = name
	b.ServicePrice = price
	b.ServiceDurationMin = durationMin
	return b
}

func (b *BookingBuilder) WithCustomer(name, email, phone string) *BookingBuilder {
	b.CustomerName = name
	b.CustomerEmail = email
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.CustomerEmail = email
	return b
}

func (b *BookingBuilder) WithSlot(date, timeLabel string) *BookingBuilder {
	b.Date = date
	b.Time = timeLabel
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithSpecialRequests(text string) *BookingBuilder {
	b.SpecialRequests = &text
	return b
}

func (b *BookingBuilder) AsTrusted() *BookingBuilder {
	b.Trusted = true
	return b
}
