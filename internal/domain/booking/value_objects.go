package booking

import (
	"errors"
	"strings"
	"time"

	"aqualux-api/internal/domain/user"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrEmptyDate         = errors.New("appointment date must not be empty")
	ErrEmptyTime         = errors.New("appointment time must not be empty")
	ErrInvalidDate       = errors.New("appointment date must be YYYY-MM-DD")
	ErrEmptyCustomerName = errors.New("customer name must not be empty")
)

const dateLayout = "2006-01-02"

// Slot is the requested appointment slot. The date must parse; the time is a
// free-form label ("10:00", "10:00 AM") because the drafts never agreed on a
// format. Past dates are accepted: rejecting them is a recommended
// validation, not an invariant.
type Slot struct {
	date string
	time string
}

func NewSlot(date, timeLabel string) (Slot, error) {
	date = strings.TrimSpace(date)
	timeLabel = strings.TrimSpace(timeLabel)

	if date == "" {
		return Slot{}, ErrEmptyDate
	}
	if timeLabel == "" {
		return Slot{}, ErrEmptyTime
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Slot{}, ErrInvalidDate
	}

	return Slot{date: date, time: timeLabel}, nil
}

func (s Slot) Date() string { return s.date }
func (s Slot) Time() string { return s.time }

func (s Slot) DateValue() time.Time {
	t, _ := time.Parse(dateLayout, s.date)
	return t
}

// Contact is the customer snapshot taken at booking time.
type Contact struct {
	name  string
	email user.Email
	phone string
}

func NewContact(name string, email user.Email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyCustomerName
	}
	return Contact{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func (c Contact) Name() string      { return c.name }
func (c Contact) Email() user.Email { return c.email }
func (c Contact) Phone() string     { return c.phone }

// ServiceSnapshot denormalizes the catalog entry at booking time so later
// catalog edits do not retroactively alter historical bookings.
type ServiceSnapshot struct {
	Name        string
	Price       int32
	DurationMin int32
}
