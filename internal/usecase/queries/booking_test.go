//go:build unit

package queries_test

import (
	"context"
	"testing"

	"aqualux-api/internal/domain/user"
	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/errs"
	"aqualux-api/internal/usecase/queries"
	"aqualux-api/internal/usecase/shared"
	"aqualux-api/tests/common/builder"
	queriesmock "aqualux-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ownerOf(email string) shared.Actor {
	return shared.Actor{ID: uuid.New(), Email: email, Role: user.RoleCustomer}
}

func adminViewer() shared.Actor {
	return shared.Actor{ID: uuid.New(), Email: "admin@aqualux.example", Role: user.RoleAdmin}
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	newQueries := func(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
		t.Helper()
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		return queries.NewBookingQueries(store), store
	}

	t.Run("owner reads their own booking", func(t *testing.T) {
		q, store := newQueries(t)

		view := builder.NewBookingBuilder().BuildView()
		view.ID = id
		store.EXPECT().FindByID(ctx, id).Return(view, nil)

		got, err := q.GetBooking(ctx, ownerOf(view.CustomerEmail), id)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("admin reads any booking", func(t *testing.T) {
		q, store := newQueries(t)

		view := builder.NewBookingBuilder().BuildView()
		view.ID = id
		store.EXPECT().FindByID(ctx, id).Return(view, nil)

		_, err := q.GetBooking(ctx, adminViewer(), id)
		require.NoError(t, err)
	})

	t.Run("other customers are denied", func(t *testing.T) {
		q, store := newQueries(t)

		view := builder.NewBookingBuilder().BuildView()
		view.ID = id
		store.EXPECT().FindByID(ctx, id).Return(view, nil)

		_, err := q.GetBooking(ctx, ownerOf("stranger@example.com"), id)
		require.True(t, errs.Is(err, queries.ErrAccessDenied), "unexpected error: %v", err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		q, store := newQueries(t)

		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		_, err := q.GetBooking(ctx, adminViewer(), id)
		require.True(t, errs.Is(err, queries.ErrBookingNotFound), "unexpected error: %v", err)
	})
}

func TestListOwnBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the caller's bookings", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		q := queries.NewBookingQueries(store)

		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().WithStatus("confirmed").BuildListItem(),
		}
		store.EXPECT().FindByOwnerEmail(ctx, "sarah.mitchell@example.com").Return(items, nil)

		got, err := q.ListOwnBookings(ctx, ownerOf("sarah.mitchell@example.com"))
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("anonymous caller gets an empty list without touching the store", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		q := queries.NewBookingQueries(store)

		got, err := q.ListOwnBookings(ctx, shared.Actor{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListAllBookings(t *testing.T) {
	ctx := context.Background()

	newQueries := func(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
		t.Helper()
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		return queries.NewBookingQueries(store), store
	}

	t.Run("admin lists with a combined filter", func(t *testing.T) {
		q, store := newQueries(t)

		filter := queries.AdminBookingFilter{SearchTerm: "sarah", Status: "confirmed"}
		views := []*queries.BookingView{builder.NewBookingBuilder().WithStatus("confirmed").BuildView()}
		store.EXPECT().FindAll(ctx, filter).Return(views, nil)

		got, err := q.ListAllBookings(ctx, adminViewer(), filter)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("admin-only", func(t *testing.T) {
		q, _ := newQueries(t)

		_, err := q.ListAllBookings(ctx, ownerOf("sarah.mitchell@example.com"), queries.AdminBookingFilter{})
		require.True(t, errs.Is(err, queries.ErrAccessDenied), "unexpected error: %v", err)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		q, _ := newQueries(t)

		_, err := q.ListAllBookings(ctx, adminViewer(), queries.AdminBookingFilter{Status: "archived"})
		require.True(t, errs.Is(err, queries.ErrInvalidFilter), "unexpected error: %v", err)
	})

	t.Run("empty status filter means all", func(t *testing.T) {
		q, store := newQueries(t)

		store.EXPECT().FindAll(ctx, queries.AdminBookingFilter{}).Return([]*queries.BookingView{}, nil)

		_, err := q.ListAllBookings(ctx, adminViewer(), queries.AdminBookingFilter{})
		require.NoError(t, err)
	})
}
