package repository

import (
	"context"

	"aqualux-api/internal/domain/booking"
	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db infra.Querier
}

func NewBookingRepository(db infra.Querier) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, service_id, service_name, service_price, service_duration_min,
	customer_name, customer_email, customer_phone,
	appointment_date, appointment_time, special_requests, status,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	var specialRequests *string
	if b.SpecialRequests() != "" {
		s := b.SpecialRequests()
		specialRequests = &s
	}

	_, err := r.db.Exec(ctx, insertBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ServiceID()),
		b.Service().Name,
		b.Service().Price,
		b.Service().DurationMin,
		b.Contact().Name(),
		b.Contact().Email().Value(),
		b.Contact().Phone(),
		pgconv.DateToPgtype(b.Slot().DateValue()),
		b.Slot().Time(),
		pgconv.StringPtrToPgtype(specialRequests),
		b.Status().String(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateSlotAndStatus(ctx context.Context, id uuid.UUID, slot booking.Slot, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings
		 SET appointment_date = $2, appointment_time = $3, status = $4, updated_at = now()
		 WHERE id = $1`,
		id, pgconv.DateToPgtype(slot.DateValue()), slot.Time(), status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
