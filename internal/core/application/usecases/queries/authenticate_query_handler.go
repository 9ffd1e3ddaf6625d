package queries

import (
	"context"
	"database/sql"
	"errors"

	"fueldelivery/internal/core/domain/model/identity"
	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateQueryHandler checks a password against the users table for users
// and the stations table for managers.
type AuthenticateQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

func NewAuthenticateQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db, hasher: hasher}
}

// Handle returns ErrInvalidCredentials (an errs.ErrForbidden) for an unknown
// email or a wrong password.
func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (identity.Principal, error) {
	if err := query.Validate(); err != nil {
		return identity.Principal{}, err
	}

	email, err := kernel.NormalizeEmail(query.Email())
	if err != nil {
		return identity.Principal{}, ErrInvalidCredentials
	}

	statement := `SELECT id, name, password_hash FROM users WHERE email = ?`
	if query.Role() == identity.RoleManager {
		statement = `SELECT id, manager_name, password_hash FROM stations WHERE email = ?`
	}

	var (
		id           uuid.UUID
		name, hashed string
	)
	err = h.db.WithContext(ctx).Raw(statement, email).Row().Scan(&id, &name, &hashed)
	if errors.Is(err, sql.ErrNoRows) {
		return identity.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return identity.Principal{}, err
	}

	if err = h.hasher.Compare(hashed, query.Password()); err != nil {
		return identity.Principal{}, ErrInvalidCredentials
	}

	principalID, err := toKernelUUID(id)
	if err != nil {
		return identity.Principal{}, err
	}
	if query.Role() == identity.RoleManager {
		return identity.NewManager(principalID, name)
	}
	return identity.NewUser(principalID, name)
}
