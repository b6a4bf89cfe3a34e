package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/shared"
	wlxtest "github.com/desertthunder/wlx/internal/testing"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns an ID and stamps timestamps", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		user, err := repos.Users.Create(ctx, "Sam", "sam@example.com", shared.DigestPassword("pw"))
		if err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
		if user.ID == "" {
			t.Error("user ID should be set after creation")
		}
		if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
			t.Error("timestamps should be set after creation")
		}
	})

	t.Run("Get returns nil for unknown ID", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		user, err := repos.Users.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil, got %+v", user)
		}
	})

	t.Run("GetByEmail round-trips", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		created, err := repos.Users.Create(ctx, "Sam", "sam@example.com", "")
		if err != nil {
			t.Fatalf("failed to create user: %v", err)
		}

		found, err := repos.Users.GetByEmail(ctx, "sam@example.com")
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if found == nil || found.ID != created.ID {
			t.Errorf("expected user %s, got %+v", created.ID, found)
		}
	})

	t.Run("Update changes only the supplied fields", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		user, err := repos.Users.Create(ctx, "Sam", "sam@example.com", "")
		if err != nil {
			t.Fatalf("failed to create user: %v", err)
		}

		updated, err := repos.Users.Update(ctx, user.ID, strPtr("Samantha"), nil, nil)
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Name != "Samantha" {
			t.Errorf("expected name Samantha, got %s", updated.Name)
		}
		if updated.Email != "sam@example.com" {
			t.Errorf("email changed unexpectedly: %s", updated.Email)
		}
	})

	t.Run("Delete of unknown ID yields ErrNotFound", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		err := repos.Users.Delete(ctx, "missing")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestTitleRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and Get", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		title, err := repos.Titles.Create(ctx, "Dune", models.TypeMovie, "Sci-Fi")
		if err != nil {
			t.Fatalf("failed to create title: %v", err)
		}

		got, err := repos.Titles.Get(ctx, title.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got == nil || got.Name != "Dune" || got.Type != models.TypeMovie {
			t.Errorf("unexpected title: %+v", got)
		}
	})

	t.Run("SearchByTitle is case-insensitive", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		wlxtest.SeedTitle(t, s, "The Matrix", "movie", "Sci-Fi")
		wlxtest.SeedTitle(t, s, "Spirited Away", "anime", "Fantasy")

		titles, err := repos.Titles.SearchByTitle(ctx, "MATRIX")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(titles) != 1 || titles[0].Name != "The Matrix" {
			t.Errorf("unexpected result: %+v", titles)
		}
	})

	t.Run("SearchAny spans title and genre", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		wlxtest.SeedTitle(t, s, "The Matrix", "movie", "Sci-Fi")
		wlxtest.SeedTitle(t, s, "Severance", "show", "Sci-Fi")

		titles, err := repos.Titles.SearchAny(ctx, "sci-fi")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(titles) != 2 {
			t.Errorf("expected 2 results, got %d", len(titles))
		}
	})

	t.Run("Genres are distinct and sorted", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		wlxtest.SeedTitle(t, s, "Dune", "movie", "Sci-Fi")
		wlxtest.SeedTitle(t, s, "Severance", "show", "Sci-Fi")
		wlxtest.SeedTitle(t, s, "The Bear", "show", "Drama")
		wlxtest.SeedTitle(t, s, "Untagged", "movie", "")

		genres, err := repos.Titles.Genres(ctx)
		if err != nil {
			t.Fatalf("genres failed: %v", err)
		}
		if len(genres) != 2 || genres[0] != "Drama" || genres[1] != "Sci-Fi" {
			t.Errorf("unexpected genres: %v", genres)
		}
	})

	t.Run("Update of unknown ID yields ErrNotFound", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		_, err := repos.Titles.Update(ctx, "missing", strPtr("Dune"), nil, nil)
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestWatchlistRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create stores an optional rating", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		userID := wlxtest.SeedUser(t, s, "Sam", "sam@example.com")
		movieID := wlxtest.SeedTitle(t, s, "Dune", "movie", "Sci-Fi")

		entry, err := repos.Watchlist.Create(ctx, userID, movieID, models.StatusWatched, intPtr(9), "great")
		if err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
		if entry.Rating == nil || *entry.Rating != 9 {
			t.Errorf("expected rating 9, got %v", entry.Rating)
		}

		unrated, err := repos.Watchlist.Create(ctx, userID, wlxtest.SeedTitle(t, s, "The Bear", "show", "Drama"), models.StatusPlanning, nil, "")
		if err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
		if unrated.Rating != nil {
			t.Errorf("expected nil rating, got %v", unrated.Rating)
		}
	})

	t.Run("FindByUserAndTitle locates the pair", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		userID := wlxtest.SeedUser(t, s, "Sam", "sam@example.com")
		movieID := wlxtest.SeedTitle(t, s, "Dune", "movie", "Sci-Fi")
		entryID := wlxtest.SeedEntry(t, s, userID, movieID, "planning")

		found, err := repos.Watchlist.FindByUserAndTitle(ctx, userID, movieID)
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if found == nil || found.ID != entryID {
			t.Errorf("expected entry %s, got %+v", entryID, found)
		}

		none, err := repos.Watchlist.FindByUserAndTitle(ctx, userID, "other")
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if none != nil {
			t.Errorf("expected nil for unknown pair, got %+v", none)
		}
	})

	t.Run("ListByUserAndStatus filters", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		userID := wlxtest.SeedUser(t, s, "Sam", "sam@example.com")
		wlxtest.SeedEntry(t, s, userID, wlxtest.SeedTitle(t, s, "Dune", "movie", "Sci-Fi"), "watched")
		wlxtest.SeedEntry(t, s, userID, wlxtest.SeedTitle(t, s, "The Bear", "show", "Drama"), "planning")

		watched, err := repos.Watchlist.ListByUserAndStatus(ctx, userID, models.StatusWatched)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(watched) != 1 || watched[0].Status != models.StatusWatched {
			t.Errorf("unexpected entries: %+v", watched)
		}
	})

	t.Run("ListByUserAndGenre joins title details", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		userID := wlxtest.SeedUser(t, s, "Sam", "sam@example.com")
		wlxtest.SeedEntry(t, s, userID, wlxtest.SeedTitle(t, s, "Dune", "movie", "Sci-Fi"), "planning")
		wlxtest.SeedEntry(t, s, userID, wlxtest.SeedTitle(t, s, "The Bear", "show", "Drama"), "planning")

		rows, err := repos.Watchlist.ListByUserAndGenre(ctx, userID, "sci")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(rows) != 1 || rows[0].Title != "Dune" || rows[0].Genre != "Sci-Fi" {
			t.Errorf("unexpected rows: %+v", rows)
		}
	})

	t.Run("Update applies partial fields", func(t *testing.T) {
		s, repos := wlxtest.SetupRepos(t)
		userID := wlxtest.SeedUser(t, s, "Sam", "sam@example.com")
		entryID := wlxtest.SeedEntry(t, s, userID, wlxtest.SeedTitle(t, s, "Dune", "movie", "Sci-Fi"), "planning")

		status := models.StatusWatched
		entry, err := repos.Watchlist.Update(ctx, entryID, &status, intPtr(8), nil)
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if entry.Status != models.StatusWatched || entry.Rating == nil || *entry.Rating != 8 {
			t.Errorf("unexpected entry: %+v", entry)
		}
		if entry.Review != "" {
			t.Errorf("review changed unexpectedly: %q", entry.Review)
		}
	})

	t.Run("Delete of unknown ID yields ErrNotFound", func(t *testing.T) {
		_, repos := wlxtest.SetupRepos(t)

		err := repos.Watchlist.Delete(ctx, "missing")
		if !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
