package readstore

import (
	"context"
	"strings"

	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/pgconv"
	"aqualux-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db infra.Querier
}

func NewBookingReadStore(db infra.Querier) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingColumns = `
	id, service_id, service_name, service_price, service_duration_min,
	customer_name, customer_email, customer_phone,
	appointment_date, appointment_time, special_requests, status,
	created_at, updated_at`

const dateLayout = "2006-01-02"

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByOwnerEmail(ctx context.Context, email string) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, service_name, service_price, appointment_date, appointment_time,
		        special_requests, status, created_at
		 FROM bookings
		 WHERE lower(customer_email) = lower($1)
		 ORDER BY created_at`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		var (
			item            queries.BookingListItem
			date            pgtype.Date
			specialRequests pgtype.Text
			createdAt       pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.ServiceName, &item.ServicePrice, &date,
			&item.AppointmentTime, &specialRequests, &item.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.AppointmentDate = pgconv.DateFromPgtype(date).Format(dateLayout)
		item.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}

// FindAll is the admin view: optional case-insensitive substring search and
// optional exact status match, AND-combined.
func (r *BookingReadStore) FindAll(ctx context.Context, filter queries.AdminBookingFilter) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings
		 WHERE ($1 = '' OR status = $1)
		   AND ($2 = ''
		        OR customer_name ILIKE '%' || $2 || '%'
		        OR customer_email ILIKE '%' || $2 || '%'
		        OR service_name ILIKE '%' || $2 || '%')
		 ORDER BY created_at DESC`,
		filter.Status, escapeLikeTerm(filter.SearchTerm))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}

// escapeLikeTerm neutralizes LIKE metacharacters so the admin search is a
// literal substring match.
func escapeLikeTerm(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view            queries.BookingView
		date            pgtype.Date
		specialRequests pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.ServiceID, &view.ServiceName, &view.ServicePrice,
		&view.ServiceDurationMin, &view.CustomerName, &view.CustomerEmail,
		&view.CustomerPhone, &date, &view.AppointmentTime,
		&specialRequests, &view.Status, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	view.AppointmentDate = pgconv.DateFromPgtype(date).Format(dateLayout)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
