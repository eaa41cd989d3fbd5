package readstore

import (
	"context"

	"aqualux-api/internal/domain/user"
	"aqualux-api/internal/infra"
	"aqualux-api/internal/pkg/pgconv"
	"aqualux-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db infra.Querier
}

func NewUserReadStore(db infra.Querier) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, role, is_active FROM users WHERE id = $1`, id)

	var view queries.AuthorizedUserView
	if err := row.Scan(&view.ID, &view.Name, &view.Email, &view.Role, &view.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.IsAdmin = view.Role == user.RoleAdmin.String()
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, role, is_active, password_hash
		 FROM users WHERE lower(email) = lower($1)`, email)

	var (
		view queries.AuthorizedUserView
		hash string
	)
	if err := row.Scan(&view.ID, &view.Name, &view.Email, &view.Role, &view.IsActive, &hash); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view.IsAdmin = view.Role == user.RoleAdmin.String()
	return &view, hash, nil
}
