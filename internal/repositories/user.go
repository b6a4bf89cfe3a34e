package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/store"
)

const userTable = "users"
const userKey = "user_id"

// UserRepository persists [models.User] rows in the users table.
type UserRepository struct {
	store store.Store
}

// NewUserRepository creates a new [UserRepository] over the given store.
func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Create inserts a new user and returns it with its store-assigned key.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	now := time.Now().UTC()
	record, err := r.store.Insert(ctx, userTable, userKey, store.Record{
		"name":          name,
		"email":         email,
		"password_hash": passwordHash,
		"created_at":    now,
		"updated_at":    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return userFromRecord(record), nil
}

// Get retrieves a user by ID. Returns nil without error when absent.
func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	records, err := r.store.Select(ctx, userTable, store.Record{userKey: id})
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return userFromRecord(records[0]), nil
}

// GetByEmail retrieves a user by email. Returns nil without error when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	records, err := r.store.Select(ctx, userTable, store.Record{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return userFromRecord(records[0]), nil
}

// List retrieves all users.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	records, err := r.store.Select(ctx, userTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users := make([]models.User, 0, len(records))
	for _, record := range records {
		users = append(users, *userFromRecord(record))
	}
	return users, nil
}

// Update applies the non-nil fields to the stored user and returns the result.
func (r *UserRepository) Update(ctx context.Context, id string, name, email, passwordHash *string) (*models.User, error) {
	fields := store.Record{"updated_at": time.Now().UTC()}
	if name != nil {
		fields["name"] = *name
	}
	if email != nil {
		fields["email"] = *email
	}
	if passwordHash != nil {
		fields["password_hash"] = *passwordHash
	}

	record, err := r.store.Update(ctx, userTable, userKey, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return userFromRecord(record), nil
}

// Delete removes a user by ID. Watchlist rows are left in place.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, userTable, userKey, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func userFromRecord(record store.Record) *models.User {
	return &models.User{
		ID:           recordString(record, userKey),
		Name:         recordString(record, "name"),
		Email:        recordString(record, "email"),
		PasswordHash: recordString(record, "password_hash"),
		CreatedAt:    recordTime(record, "created_at"),
		UpdatedAt:    recordTime(record, "updated_at"),
	}
}
