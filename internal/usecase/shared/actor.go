package shared

import (
	"aqualux-api/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated identity performing an operation, as carried
// by the auth middleware. The zero value is an anonymous caller.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) IsAnonymous() bool {
	return a.ID == uuid.Nil
}
