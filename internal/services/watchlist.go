package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/repositories"
	"github.com/desertthunder/wlx/internal/shared"
)

// WatchlistService gates all writes to the watchlist relation: referential
// checks against users and titles, status-enum folding, rating range and
// the partial-update merge policy.
type WatchlistService struct {
	entries *repositories.WatchlistRepository
	users   *repositories.UserRepository
	titles  *repositories.TitleRepository
}

// NewWatchlistService creates a new [WatchlistService].
func NewWatchlistService(entries *repositories.WatchlistRepository, users *repositories.UserRepository, titles *repositories.TitleRepository) *WatchlistService {
	return &WatchlistService{entries: entries, users: users, titles: titles}
}

// Add creates a watchlist entry after confirming, in order, that the user
// exists, the title exists, and the status folds into the enum. An empty
// status defaults to planning. Rating, when supplied, must be 1-10, and a
// user may hold at most one entry per title.
func (s *WatchlistService) Add(ctx context.Context, userID, movieID, status string, rating *int, review string) (*models.WatchlistEntry, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, userID)
	}

	title, err := s.titles.Get(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrTitleNotFound, movieID)
	}

	parsed := models.StatusPlanning
	if status != "" {
		if parsed, err = models.ParseStatus(status); err != nil {
			return nil, err
		}
	}

	if err := validRating(rating); err != nil {
		return nil, err
	}

	existing, err := s.entries.FindByUserAndTitle(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateEntry, title.Name)
	}

	return s.entries.Create(ctx, userID, movieID, parsed, rating, review)
}

// ForUser returns every entry for the user, in store order. An unknown
// user yields an empty list, not an error.
func (s *WatchlistService) ForUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	return s.entries.ListByUser(ctx, userID)
}

// ForUserByStatus returns the user's entries with the given status. The
// status filter is folded and validated before the store is touched.
func (s *WatchlistService) ForUserByStatus(ctx context.Context, userID, status string) ([]models.WatchlistEntry, error) {
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.entries.ListByUserAndStatus(ctx, userID, parsed)
}

// ForUserByGenre returns the user's entries whose title genre contains the
// given text, joined with title details.
func (s *WatchlistService) ForUserByGenre(ctx context.Context, userID, genre string) ([]repositories.GenreEntry, error) {
	return s.entries.ListByUserAndGenre(ctx, userID, genre)
}

// UpdateEntry applies the supplied fields to an entry. Omitted fields keep
// their stored values; a supplied status must fold into the enum; an update
// supplying nothing is rejected rather than silently succeeding.
func (s *WatchlistService) UpdateEntry(ctx context.Context, id string, upd models.EntryUpdate) (*models.WatchlistEntry, error) {
	if upd.Empty() {
		return nil, shared.ErrNoFieldsToUpdate
	}

	var status *models.Status
	if upd.Status != nil {
		parsed, err := models.ParseStatus(*upd.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	if err := validRating(upd.Rating); err != nil {
		return nil, err
	}

	entry, err := s.entries.Update(ctx, id, status, upd.Rating, upd.Review)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", shared.ErrEntryNotFound, id)
		}
		return nil, err
	}
	return entry, nil
}

// Remove deletes an entry by its own key, failing with
// [shared.ErrEntryNotFound] for an unknown key.
func (s *WatchlistService) Remove(ctx context.Context, id string) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrEntryNotFound, id)
		}
		return err
	}
	return nil
}

func validRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 10) {
		return fmt.Errorf("%w (got %d)", shared.ErrInvalidRating, *rating)
	}
	return nil
}
