package commands

import (
	"context"

	"aqualux-api/internal/domain/booking"
	"aqualux-api/internal/domain/user"
	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/clock"
	"aqualux-api/internal/pkg/errs"
	"aqualux-api/internal/pkg/metrics"
	"aqualux-api/internal/usecase/queries"
	"aqualux-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation        = errs.New("validation error")
	ErrServiceNotFound   = errs.New("service not found")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrAccessDenied      = errs.New("access denied")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrPersistence       = errs.New("persistence failure")
)

type CreateBookingInput struct {
	ServiceID       uuid.UUID
	Date            string
	Time            string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests *string
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	UpdateSlotAndStatus(ctx context.Context, id uuid.UUID, slot booking.Slot, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor shared.Actor, input CreateBookingInput) (*queries.BookingView, error)
	ConfirmBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
	CompleteBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
	RescheduleBooking(ctx context.Context, actor shared.Actor, id uuid.UUID, newDate, newTime string) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo   BookingRepository
	bookingReader BookingReader
	serviceReader ServiceReader
	clock         clock.Clock
	autoConfirm   bool
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	bookingReader BookingReader,
	serviceReader ServiceReader,
	clk clock.Clock,
	autoConfirm bool,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:   bookingRepo,
		bookingReader: bookingReader,
		serviceReader: serviceReader,
		clock:         clk,
		autoConfirm:   autoConfirm,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, actor shared.Actor, input CreateBookingInput) (*queries.BookingView, error) {
	svc, err := c.serviceReader.FindByID(ctx, input.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrPersistence)
	}

	email, err := user.NewEmail(input.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	// Customers book for themselves; only admins may create a booking on
	// someone else's behalf.
	if !actor.IsAdmin() && email.Value() != actor.Email {
		return nil, ErrAccessDenied
	}

	contact, err := booking.NewContact(input.CustomerName, email, input.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	slot, err := booking.NewSlot(input.Date, input.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	specialRequests := ""
	if input.SpecialRequests != nil {
		specialRequests = *input.SpecialRequests
	}

	trusted := actor.IsAdmin() || c.autoConfirm
	entity := booking.NewBooking(
		input.ServiceID,
		booking.ServiceSnapshot{
			Name:        svc.Title,
			Price:       svc.Price,
			DurationMin: svc.DurationMin,
		},
		contact,
		slot,
		specialRequests,
		trusted,
		c.clock.Now(),
	)

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	metrics.IncBookingsCreated()

	return c.readBack(ctx, entity.ID())
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	entity, err := c.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Confirm(); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	return c.readBack(ctx, id)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	entity, err := c.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !entity.IsOwnedBy(actor.Email) {
		return nil, ErrAccessDenied
	}

	if err := entity.Cancel(); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	return c.readBack(ctx, id)
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	entity, err := c.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Complete(); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	return c.readBack(ctx, id)
}

func (c *bookingCommandsImpl) RescheduleBooking(ctx context.Context, actor shared.Actor, id uuid.UUID, newDate, newTime string) (*queries.BookingView, error) {
	entity, err := c.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !entity.IsOwnedBy(actor.Email) {
		return nil, ErrAccessDenied
	}

	newSlot, err := booking.NewSlot(newDate, newTime)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := entity.Reschedule(newSlot); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.bookingRepo.UpdateSlotAndStatus(ctx, id, newSlot, entity.Status()); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	return c.readBack(ctx, id)
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrAccessDenied
	}

	if _, err := c.loadBooking(ctx, id); err != nil {
		return err
	}

	if err := c.bookingRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	return nil
}

// loadBooking reads the stored view and rebuilds the domain entity so the
// state machine decides every transition.
func (c *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	view, err := c.bookingReader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrPersistence)
	}

	return viewToDomain(view)
}

func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookingReader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}
	return view, nil
}

func viewToDomain(view *queries.BookingView) (*booking.Booking, error) {
	email, err := user.NewEmail(view.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	contact, err := booking.NewContact(view.CustomerName, email, view.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	slot, err := booking.NewSlot(view.AppointmentDate, view.AppointmentTime)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	status, err := booking.NewStatus(view.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	specialRequests := ""
	if view.SpecialRequests != nil {
		specialRequests = *view.SpecialRequests
	}

	return booking.ReconstructBooking(
		view.ID,
		view.ServiceID,
		booking.ServiceSnapshot{
			Name:        view.ServiceName,
			Price:       view.ServicePrice,
			DurationMin: view.ServiceDurationMin,
		},
		contact,
		slot,
		specialRequests,
		status,
		view.CreatedAt,
		view.UpdatedAt,
	), nil
}
