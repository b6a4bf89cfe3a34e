package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/repositories"
	"github.com/desertthunder/wlx/internal/shared"
)

// UserService gates writes to the users table with presence and
// email-uniqueness checks, and derives password digests on registration.
type UserService struct {
	users *repositories.UserRepository
}

// NewUserService creates a new [UserService].
func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create adds a user without credentials. Email must be unique.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	return s.create(ctx, name, email, "")
}

// Register adds a user with a password digest derived from the plaintext.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password", shared.ErrMissingArgument)
	}
	return s.create(ctx, name, email, shared.DigestPassword(password))
}

func (s *UserService) create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("%w: name", shared.ErrMissingArgument)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email", shared.ErrMissingArgument)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateEmail, email)
	}

	return s.users.Create(ctx, name, email, passwordHash)
}

// Authenticate looks a user up by email and compares password digests.
// A missing user and a wrong password both fail with
// [shared.ErrInvalidCredentials]; callers branch with errors.Is rather than
// showing a store error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash != shared.DigestPassword(password) {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// Get fetches a user by ID, failing with [shared.ErrUserNotFound] when absent.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Update applies the supplied fields to a user. A changed email is
// re-checked for uniqueness against all other users.
func (s *UserService) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	if upd.Empty() {
		return nil, shared.ErrNoFieldsToUpdate
	}

	if upd.Email != nil {
		existing, err := s.users.GetByEmail(ctx, *upd.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateEmail, *upd.Email)
		}
	}

	var passwordHash *string
	if upd.Password != nil {
		digest := shared.DigestPassword(*upd.Password)
		passwordHash = &digest
	}

	user, err := s.users.Update(ctx, id, upd.Name, upd.Email, passwordHash)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Watchlist entries are not cascaded.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
		}
		return err
	}
	return nil
}
