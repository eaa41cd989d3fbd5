package queries

import (
	"context"
	"log/slog"

	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service not found")

type CatalogReadStore interface {
	FindAll(ctx context.Context) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

// CatalogCache is a read-through cache for the service list. A failing
// cache must degrade to the database, never to the caller.
type CatalogCache interface {
	GetServices(ctx context.Context) ([]*ServiceView, bool)
	SetServices(ctx context.Context, services []*ServiceView)
}

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
	cache     CatalogCache
}

func NewCatalogQueries(readStore CatalogReadStore, cache CatalogCache) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore, cache: cache}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	if cached, ok := q.cache.GetServices(ctx); ok {
		return cached, nil
	}

	services, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	q.cache.SetServices(ctx, services)
	return services, nil
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	if cached, ok := q.cache.GetServices(ctx); ok {
		for _, svc := range cached {
			if svc.ID == id {
				return svc, nil
			}
		}
		slog.Debug("service missing from cached catalog, falling back to store", "service_id", id)
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}
