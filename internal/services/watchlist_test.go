package services_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/shared"
)

// seedPair creates a user and a title for watchlist tests.
func seedPair(t *testing.T, svc testServices) (userID, movieID string) {
	t.Helper()
	ctx := context.Background()

	user, err := svc.users.Create(ctx, "Sam", "sam@example.com")
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	title, err := svc.titles.Add(ctx, "Dune", "movie", "Sci-Fi")
	if err != nil {
		t.Fatalf("add title failed: %v", err)
	}
	return user.ID, title.ID
}

func TestWatchlistServiceAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("empty status defaults to planning", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		entry, err := svc.watchlist.Add(ctx, userID, movieID, "", nil, "")
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if entry.Status != models.StatusPlanning {
			t.Errorf("expected planning, got %s", entry.Status)
		}
	})

	t.Run("status folds case-insensitively", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		entry, err := svc.watchlist.Add(ctx, userID, movieID, "  Watched ", intPtr(9), "great")
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if entry.Status != models.StatusWatched {
			t.Errorf("expected watched, got %s", entry.Status)
		}
	})

	t.Run("unknown user is checked before the title", func(t *testing.T) {
		_, svc := setupServices(t)
		_, movieID := seedPair(t, svc)

		_, err := svc.watchlist.Add(ctx, "missing", movieID, "planning", nil, "")
		if !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("unknown title is rejected", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, _ := seedPair(t, svc)

		_, err := svc.watchlist.Add(ctx, userID, "missing", "planning", nil, "")
		if !errors.Is(err, shared.ErrTitleNotFound) {
			t.Errorf("expected ErrTitleNotFound, got %v", err)
		}
	})

	t.Run("invalid status writes nothing", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		_, err := svc.watchlist.Add(ctx, userID, movieID, "paused", nil, "")
		if !errors.Is(err, shared.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}

		entries, err := svc.watchlist.ForUser(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("rejected add left %d rows", len(entries))
		}
	})

	t.Run("rating must be 1-10", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		for _, rating := range []int{0, 11, -3} {
			if _, err := svc.watchlist.Add(ctx, userID, movieID, "watched", intPtr(rating), ""); !errors.Is(err, shared.ErrInvalidRating) {
				t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
			}
		}
	})

	t.Run("one entry per user and title", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		if _, err := svc.watchlist.Add(ctx, userID, movieID, "planning", nil, ""); err != nil {
			t.Fatalf("first add failed: %v", err)
		}

		_, err := svc.watchlist.Add(ctx, userID, movieID, "watched", nil, "")
		if !errors.Is(err, shared.ErrDuplicateEntry) {
			t.Errorf("expected ErrDuplicateEntry, got %v", err)
		}
	})
}

func TestWatchlistServiceQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user lists empty without error", func(t *testing.T) {
		_, svc := setupServices(t)

		entries, err := svc.watchlist.ForUser(ctx, "missing")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected empty list, got %d rows", len(entries))
		}
	})

	t.Run("repeated reads return equal lists", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		if _, err := svc.watchlist.Add(ctx, userID, movieID, "watched", intPtr(8), "solid"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		other, err := svc.titles.Add(ctx, "The Bear", "show", "Drama")
		if err != nil {
			t.Fatalf("add title failed: %v", err)
		}
		if _, err := svc.watchlist.Add(ctx, userID, other.ID, "planning", nil, ""); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		first, err := svc.watchlist.ForUser(ctx, userID)
		if err != nil {
			t.Fatalf("first read failed: %v", err)
		}
		second, err := svc.watchlist.ForUser(ctx, userID)
		if err != nil {
			t.Fatalf("second read failed: %v", err)
		}

		if len(first) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(first))
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("back-to-back reads differ:\n%+v\n%+v", first, second)
		}
	})

	t.Run("status filter folds before querying", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		if _, err := svc.watchlist.Add(ctx, userID, movieID, "watched", nil, ""); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		other, err := svc.titles.Add(ctx, "The Bear", "show", "Drama")
		if err != nil {
			t.Fatalf("add title failed: %v", err)
		}
		if _, err := svc.watchlist.Add(ctx, userID, other.ID, "planning", nil, ""); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		entries, err := svc.watchlist.ForUserByStatus(ctx, userID, "Watched")
		if err != nil {
			t.Fatalf("filter failed: %v", err)
		}
		if len(entries) != 1 || entries[0].Status != models.StatusWatched {
			t.Errorf("unexpected entries: %+v", entries)
		}

		if _, err := svc.watchlist.ForUserByStatus(ctx, userID, "paused"); !errors.Is(err, shared.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("genre filter joins title details", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		if _, err := svc.watchlist.Add(ctx, userID, movieID, "planning", nil, ""); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		rows, err := svc.watchlist.ForUserByGenre(ctx, userID, "sci")
		if err != nil {
			t.Fatalf("filter failed: %v", err)
		}
		if len(rows) != 1 || rows[0].Title != "Dune" {
			t.Errorf("unexpected rows: %+v", rows)
		}
	})
}

func TestWatchlistServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted fields keep stored values", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		entry, err := svc.watchlist.Add(ctx, userID, movieID, "planning", nil, "queued for the weekend")
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		updated, err := svc.watchlist.UpdateEntry(ctx, entry.ID, models.EntryUpdate{
			Status: strPtr("watched"),
			Rating: intPtr(8),
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Status != models.StatusWatched || updated.Rating == nil || *updated.Rating != 8 {
			t.Errorf("unexpected entry: %+v", updated)
		}
		if updated.Review != "queued for the weekend" {
			t.Errorf("omitted review changed: %q", updated.Review)
		}
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, svc := setupServices(t)

		_, err := svc.watchlist.UpdateEntry(ctx, "anything", models.EntryUpdate{})
		if !errors.Is(err, shared.ErrNoFieldsToUpdate) {
			t.Errorf("expected ErrNoFieldsToUpdate, got %v", err)
		}
	})

	t.Run("invalid status and rating are rejected", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		entry, err := svc.watchlist.Add(ctx, userID, movieID, "planning", nil, "")
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		if _, err := svc.watchlist.UpdateEntry(ctx, entry.ID, models.EntryUpdate{Status: strPtr("paused")}); !errors.Is(err, shared.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
		if _, err := svc.watchlist.UpdateEntry(ctx, entry.ID, models.EntryUpdate{Rating: intPtr(42)}); !errors.Is(err, shared.ErrInvalidRating) {
			t.Errorf("expected ErrInvalidRating, got %v", err)
		}
	})

	t.Run("unknown ID yields ErrEntryNotFound", func(t *testing.T) {
		_, svc := setupServices(t)

		_, err := svc.watchlist.UpdateEntry(ctx, "missing", models.EntryUpdate{Status: strPtr("watched")})
		if !errors.Is(err, shared.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

func TestWatchlistServiceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes by entry key", func(t *testing.T) {
		_, svc := setupServices(t)
		userID, movieID := seedPair(t, svc)

		entry, err := svc.watchlist.Add(ctx, userID, movieID, "planning", nil, "")
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		if err := svc.watchlist.Remove(ctx, entry.ID); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		entries, err := svc.watchlist.ForUser(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("entry still present: %+v", entries)
		}
	})

	t.Run("unknown ID yields ErrEntryNotFound", func(t *testing.T) {
		_, svc := setupServices(t)

		if err := svc.watchlist.Remove(ctx, "missing"); !errors.Is(err, shared.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

// End-to-end flow: register, add a title, watch it, then filter by status.
func TestWatchlistFlow(t *testing.T) {
	ctx := context.Background()
	_, svc := setupServices(t)

	user, err := svc.users.Register(ctx, "Sam", "sam@example.com", "hunter2")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	title, err := svc.titles.Add(ctx, "Severance", "Show", "Sci-Fi")
	if err != nil {
		t.Fatalf("add title failed: %v", err)
	}

	entry, err := svc.watchlist.Add(ctx, user.ID, title.ID, "planning", nil, "")
	if err != nil {
		t.Fatalf("add entry failed: %v", err)
	}

	if _, err := svc.watchlist.UpdateEntry(ctx, entry.ID, models.EntryUpdate{
		Status: strPtr("Watched"),
		Rating: intPtr(10),
		Review: strPtr("perfect season"),
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	watched, err := svc.watchlist.ForUserByStatus(ctx, user.ID, "watched")
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(watched) != 1 {
		t.Fatalf("expected 1 watched entry, got %d", len(watched))
	}
	if watched[0].Rating == nil || *watched[0].Rating != 10 || watched[0].Review != "perfect season" {
		t.Errorf("unexpected entry: %+v", watched[0])
	}
}
