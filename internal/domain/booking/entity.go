package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id              uuid.UUID
	serviceID       uuid.UUID
	service         ServiceSnapshot
	contact         Contact
	slot            Slot
	specialRequests string
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a booking in its policy-defined initial state:
// pending for the customer-facing flow, confirmed only when a trusted
// (admin-initiated or auto-confirm) path is used.
func NewBooking(
	serviceID uuid.UUID,
	service ServiceSnapshot,
	contact Contact,
	slot Slot,
	specialRequests string,
	trusted bool,
	now time.Time,
) *Booking {
	status := StatusPending
	if trusted {
		status = StatusConfirmed
	}

	return &Booking{
		id:              uuid.New(),
		serviceID:       serviceID,
		service:         service,
		contact:         contact,
		slot:            slot,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructBooking(
	id, serviceID uuid.UUID,
	service ServiceSnapshot,
	contact Contact,
	slot Slot,
	specialRequests string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		serviceID:       serviceID,
		service:         service,
		contact:         contact,
		slot:            slot,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// transition enforces the lifecycle table; illegal moves fail with
// ErrInvalidTransition and leave the booking untouched.
func (b *Booking) transition(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// Confirm moves pending or rescheduled bookings to confirmed.
func (b *Booking) Confirm() error {
	return b.transition(StatusConfirmed)
}

func (b *Booking) Cancel() error {
	return b.transition(StatusCancelled)
}

func (b *Booking) Complete() error {
	return b.transition(StatusCompleted)
}

// Reschedule replaces the slot and marks the booking rescheduled; it stays
// in that state until re-confirmed.
func (b *Booking) Reschedule(newSlot Slot) error {
	if err := b.transition(StatusRescheduled); err != nil {
		return err
	}
	b.slot = newSlot
	return nil
}

// IsOwnedBy matches on the customer email snapshot, case-insensitively
// (emails are lowercased at the value-object boundary).
func (b *Booking) IsOwnedBy(email string) bool {
	return b.contact.Email().Value() == email
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) ServiceID() uuid.UUID     { return b.serviceID }
func (b *Booking) Service() ServiceSnapshot { return b.service }
func (b *Booking) Contact() Contact         { return b.contact }
func (b *Booking) Slot() Slot               { return b.slot }
func (b *Booking) SpecialRequests() string  { return b.specialRequests }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
