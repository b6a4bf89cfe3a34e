package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/store"
)

const watchlistTable = "userwatchlist"
const watchlistKey = "watchlist_id"

// WatchlistRepository persists [models.WatchlistEntry] rows in the
// userwatchlist table.
type WatchlistRepository struct {
	store store.Store
}

// NewWatchlistRepository creates a new [WatchlistRepository] over the given store.
func NewWatchlistRepository(s store.Store) *WatchlistRepository {
	return &WatchlistRepository{store: s}
}

// GenreEntry is a watchlist row joined with its title, produced by the
// genre-filtered lookup.
type GenreEntry struct {
	models.WatchlistEntry
	Title     string           `json:"title"`
	TitleType models.TitleType `json:"type"`
	Genre     string           `json:"genre"`
}

// Create inserts a new watchlist entry and returns it with its store-assigned key.
func (r *WatchlistRepository) Create(ctx context.Context, userID, movieID string, status models.Status, rating *int, review string) (*models.WatchlistEntry, error) {
	now := time.Now().UTC()
	fields := store.Record{
		"user_id":    userID,
		"movie_id":   movieID,
		"status":     string(status),
		"review":     review,
		"created_at": now,
		"updated_at": now,
	}
	if rating != nil {
		fields["rating"] = *rating
	}

	record, err := r.store.Insert(ctx, watchlistTable, watchlistKey, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to insert watchlist entry: %w", err)
	}
	return entryFromRecord(record), nil
}

// Get retrieves a watchlist entry by ID. Returns nil without error when absent.
func (r *WatchlistRepository) Get(ctx context.Context, id string) (*models.WatchlistEntry, error) {
	records, err := r.store.Select(ctx, watchlistTable, store.Record{watchlistKey: id})
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist entry: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return entryFromRecord(records[0]), nil
}

// FindByUserAndTitle returns the entry linking a user to a title, or nil.
func (r *WatchlistRepository) FindByUserAndTitle(ctx context.Context, userID, movieID string) (*models.WatchlistEntry, error) {
	records, err := r.store.Select(ctx, watchlistTable, store.Record{"user_id": userID, "movie_id": movieID})
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist pair: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return entryFromRecord(records[0]), nil
}

// ListByUser retrieves all entries for a user, in store order.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	records, err := r.store.Select(ctx, watchlistTable, store.Record{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	return entriesFromRecords(records), nil
}

// ListByUserAndStatus retrieves a user's entries with the given status.
func (r *WatchlistRepository) ListByUserAndStatus(ctx context.Context, userID string, status models.Status) ([]models.WatchlistEntry, error) {
	records, err := r.store.Select(ctx, watchlistTable, store.Record{"user_id": userID, "status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist by status: %w", err)
	}
	return entriesFromRecords(records), nil
}

// ListByUserAndGenre retrieves a user's entries whose title genre contains
// the given text, joined with title details.
func (r *WatchlistRepository) ListByUserAndGenre(ctx context.Context, userID, genre string) ([]GenreEntry, error) {
	records, err := r.store.UserWatchlistByGenre(ctx, userID, genre)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist by genre: %w", err)
	}

	entries := make([]GenreEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, GenreEntry{
			WatchlistEntry: *entryFromRecord(record),
			Title:          recordString(record, "title"),
			TitleType:      models.TitleType(recordString(record, "type")),
			Genre:          recordString(record, "genre"),
		})
	}
	return entries, nil
}

// Update applies the non-nil fields to the stored entry and returns the result.
func (r *WatchlistRepository) Update(ctx context.Context, id string, status *models.Status, rating *int, review *string) (*models.WatchlistEntry, error) {
	fields := store.Record{"updated_at": time.Now().UTC()}
	if status != nil {
		fields["status"] = string(*status)
	}
	if rating != nil {
		fields["rating"] = *rating
	}
	if review != nil {
		fields["review"] = *review
	}

	record, err := r.store.Update(ctx, watchlistTable, watchlistKey, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update watchlist entry: %w", err)
	}
	return entryFromRecord(record), nil
}

// Delete removes a watchlist entry by ID.
func (r *WatchlistRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, watchlistTable, watchlistKey, id); err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}
	return nil
}

func entryFromRecord(record store.Record) *models.WatchlistEntry {
	return &models.WatchlistEntry{
		ID:        recordString(record, watchlistKey),
		UserID:    recordString(record, "user_id"),
		MovieID:   recordString(record, "movie_id"),
		Status:    models.Status(recordString(record, "status")),
		Rating:    recordIntPtr(record, "rating"),
		Review:    recordString(record, "review"),
		CreatedAt: recordTime(record, "created_at"),
		UpdatedAt: recordTime(record, "updated_at"),
	}
}

func entriesFromRecords(records []store.Record) []models.WatchlistEntry {
	entries := make([]models.WatchlistEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, *entryFromRecord(record))
	}
	return entries
}
