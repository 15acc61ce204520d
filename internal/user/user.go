package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
)

// User is an account holder. PasswordHash never leaves the package; the
// HTTP layer builds responses from the other fields only.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	Name         string
	CreatedAt    time.Time
}
