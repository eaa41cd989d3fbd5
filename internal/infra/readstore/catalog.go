package readstore

import (
	"context"

	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/pgconv"
	"aqualux-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	db infra.Querier
}

func NewCatalogReadStore(db infra.Querier) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

const serviceColumns = `id, title, description, price, duration_min, features, featured, created_at`

func (r *CatalogReadStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY price`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views := []*queries.ServiceView{}
	for rows.Next() {
		view, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}

	return views, nil
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)

	view, err := scanServiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return view, nil
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var (
		view      queries.ServiceView
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.Title, &view.Description, &view.Price,
		&view.DurationMin, &view.Features, &view.Featured, &createdAt,
	); err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
