package queries

import (
	"context"

	"aqualux-api/internal/domain/booking"
	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/errs"
	"aqualux-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrAccessDenied    = errs.New("access denied")
	ErrInvalidFilter   = errs.New("invalid status filter")
	ErrQueryFailed     = errs.New("booking query failed")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByOwnerEmail(ctx context.Context, email string) ([]*BookingListItem, error)
	FindAll(ctx context.Context, filter AdminBookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListOwnBookings(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error)
	ListAllBookings(ctx context.Context, actor shared.Actor, filter AdminBookingFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	if !actor.IsAdmin() && view.CustomerEmail != actor.Email {
		return nil, ErrAccessDenied
	}

	return view, nil
}

// ListOwnBookings returns the owner view. An anonymous caller gets an empty
// result, not an error.
func (q *bookingQueriesImpl) ListOwnBookings(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error) {
	if actor.IsAnonymous() {
		return []*BookingListItem{}, nil
	}

	items, err := q.readStore.FindByOwnerEmail(ctx, actor.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListAllBookings(ctx context.Context, actor shared.Actor, filter AdminBookingFilter) ([]*BookingView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	if filter.Status != "" {
		if _, err := booking.NewStatus(filter.Status); err != nil {
			return nil, ErrInvalidFilter
		}
	}

	views, err := q.readStore.FindAll(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
