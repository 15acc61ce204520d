package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=user
type Store interface {
	// Create inserts the user; returns ErrEmailTaken when the email exists.
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: hash,
		Name:         params.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate verifies the email/password pair. Unknown email and wrong
// password both come back as ErrInvalidCredentials so responses cannot be
// used to probe for accounts.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
