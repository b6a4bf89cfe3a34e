package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/store"
)

const titleTable = "movies_shows"
const titleKey = "movie_id"

// TitleRepository persists [models.Title] rows in the movies_shows table.
type TitleRepository struct {
	store store.Store
}

// NewTitleRepository creates a new [TitleRepository] over the given store.
func NewTitleRepository(s store.Store) *TitleRepository {
	return &TitleRepository{store: s}
}

// Create inserts a new title and returns it with its store-assigned key.
func (r *TitleRepository) Create(ctx context.Context, name string, titleType models.TitleType, genre string) (*models.Title, error) {
	now := time.Now().UTC()
	record, err := r.store.Insert(ctx, titleTable, titleKey, store.Record{
		"title":      name,
		"type":       string(titleType),
		"genre":      genre,
		"created_at": now,
		"updated_at": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert title: %w", err)
	}
	return titleFromRecord(record), nil
}

// Get retrieves a title by ID. Returns nil without error when absent.
func (r *TitleRepository) Get(ctx context.Context, id string) (*models.Title, error) {
	records, err := r.store.Select(ctx, titleTable, store.Record{titleKey: id})
	if err != nil {
		return nil, fmt.Errorf("failed to query title: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return titleFromRecord(records[0]), nil
}

// List retrieves all titles.
func (r *TitleRepository) List(ctx context.Context) ([]models.Title, error) {
	records, err := r.store.Select(ctx, titleTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query titles: %w", err)
	}
	return titlesFromRecords(records), nil
}

// SearchByTitle returns titles whose name contains the keyword, case-insensitively.
func (r *TitleRepository) SearchByTitle(ctx context.Context, keyword string) ([]models.Title, error) {
	records, err := r.store.SelectLike(ctx, titleTable, "title", keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search titles: %w", err)
	}
	return titlesFromRecords(records), nil
}

// SearchAny returns titles whose name or genre contains the keyword.
func (r *TitleRepository) SearchAny(ctx context.Context, keyword string) ([]models.Title, error) {
	records, err := r.store.SelectAnyLike(ctx, titleTable, []string{"title", "genre"}, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search titles: %w", err)
	}
	return titlesFromRecords(records), nil
}

// Genres returns the distinct non-empty genres across the catalog, sorted.
func (r *TitleRepository) Genres(ctx context.Context) ([]string, error) {
	records, err := r.store.Select(ctx, titleTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}

	seen := make(map[string]bool)
	var genres []string
	for _, record := range records {
		genre := recordString(record, "genre")
		if genre == "" || seen[genre] {
			continue
		}
		seen[genre] = true
		genres = append(genres, genre)
	}

	sort.Strings(genres)
	return genres, nil
}

// Update applies the non-nil fields to the stored title and returns the result.
func (r *TitleRepository) Update(ctx context.Context, id string, name *string, titleType *models.TitleType, genre *string) (*models.Title, error) {
	fields := store.Record{"updated_at": time.Now().UTC()}
	if name != nil {
		fields["title"] = *name
	}
	if titleType != nil {
		fields["type"] = string(*titleType)
	}
	if genre != nil {
		fields["genre"] = *genre
	}

	record, err := r.store.Update(ctx, titleTable, titleKey, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update title: %w", err)
	}
	return titleFromRecord(record), nil
}

// Delete removes a title by ID. Watchlist rows referencing it are left in place.
func (r *TitleRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, titleTable, titleKey, id); err != nil {
		return fmt.Errorf("failed to delete title: %w", err)
	}
	return nil
}

func titleFromRecord(record store.Record) *models.Title {
	return &models.Title{
		ID:        recordString(record, titleKey),
		Name:      recordString(record, "title"),
		Type:      models.TitleType(recordString(record, "type")),
		Genre:     recordString(record, "genre"),
		CreatedAt: recordTime(record, "created_at"),
		UpdatedAt: recordTime(record, "updated_at"),
	}
}

func titlesFromRecords(records []store.Record) []models.Title {
	titles := make([]models.Title, 0, len(records))
	for _, record := range records {
		titles = append(titles, *titleFromRecord(record))
	}
	return titles
}
