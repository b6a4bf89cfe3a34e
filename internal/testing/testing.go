// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/desertthunder/wlx/internal/repositories"
	"github.com/desertthunder/wlx/internal/shared"
	"github.com/desertthunder/wlx/internal/store"
)

// SetupDB creates an in-memory SQLite database with migrations applied.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// SetupStore creates a store backed by an in-memory database.
func SetupStore(t *testing.T) *store.SQLStore {
	t.Helper()
	return store.NewSQLStore(SetupDB(t), "sqlite3")
}

// SeedUser inserts a user row and returns its ID.
func SeedUser(t *testing.T, s store.Store, name, email string) string {
	t.Helper()

	now := time.Now().UTC()
	rec, err := s.Insert(context.Background(), "users", "user_id", store.Record{
		"name":          name,
		"email":         email,
		"password_hash": shared.DigestPassword("hunter2"),
		"created_at":    now,
		"updated_at":    now,
	})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return rec["user_id"].(string)
}

// SeedTitle inserts a title row and returns its ID.
func SeedTitle(t *testing.T, s store.Store, name, titleType, genre string) string {
	t.Helper()

	now := time.Now().UTC()
	rec, err := s.Insert(context.Background(), "movies_shows", "movie_id", store.Record{
		"title":      name,
		"type":       titleType,
		"genre":      genre,
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		t.Fatalf("failed to seed title: %v", err)
	}
	return rec["movie_id"].(string)
}

// SeedEntry inserts a watchlist row and returns its ID.
func SeedEntry(t *testing.T, s store.Store, userID, movieID, status string) string {
	t.Helper()

	now := time.Now().UTC()
	rec, err := s.Insert(context.Background(), "userwatchlist", "watchlist_id", store.Record{
		"user_id":    userID,
		"movie_id":   movieID,
		"status":     status,
		"review":     "",
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		t.Fatalf("failed to seed watchlist entry: %v", err)
	}
	return rec["watchlist_id"].(string)
}

// Repos bundles the three repositories over a single store.
type Repos struct {
	Users     *repositories.UserRepository
	Titles    *repositories.TitleRepository
	Watchlist *repositories.WatchlistRepository
}

// SetupRepos creates repositories backed by an in-memory database.
func SetupRepos(t *testing.T) (*store.SQLStore, Repos) {
	t.Helper()

	s := SetupStore(t)
	return s, Repos{
		Users:     repositories.NewUserRepository(s),
		Titles:    repositories.NewTitleRepository(s),
		Watchlist: repositories.NewWatchlistRepository(s),
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
