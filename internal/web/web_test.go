package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wlx/internal/services"
	wlxtest "github.com/desertthunder/wlx/internal/testing"
	"github.com/desertthunder/wlx/internal/web"
)

type fixture struct {
	app       *web.App
	users     *services.UserService
	titles    *services.TitleService
	watchlist *services.WatchlistService
}

func setupApp(t *testing.T) fixture {
	t.Helper()

	_, repos := wlxtest.SetupRepos(t)
	users := services.NewUserService(repos.Users)
	titles := services.NewTitleService(repos.Titles)
	watchlist := services.NewWatchlistService(repos.Watchlist, repos.Users, repos.Titles)

	app, err := web.NewApp(log.New(io.Discard), users, titles, watchlist)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	return fixture{app: app, users: users, titles: titles, watchlist: watchlist}
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDashboard(t *testing.T) {
	t.Run("renders users and titles", func(t *testing.T) {
		f := setupApp(t)
		ctx := context.Background()

		if _, err := f.users.Create(ctx, "Sam", "sam@example.com"); err != nil {
			t.Fatalf("seed user failed: %v", err)
		}
		if _, err := f.titles.Add(ctx, "Dune", "movie", "Sci-Fi"); err != nil {
			t.Fatalf("seed title failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		f.app.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Sam") || !strings.Contains(body, "Dune") {
			t.Errorf("dashboard missing seeded data")
		}
	})

	t.Run("search narrows the catalog", func(t *testing.T) {
		f := setupApp(t)
		ctx := context.Background()

		if _, err := f.titles.Add(ctx, "Dune", "movie", "Sci-Fi"); err != nil {
			t.Fatalf("seed title failed: %v", err)
		}
		if _, err := f.titles.Add(ctx, "The Bear", "show", "Drama"); err != nil {
			t.Fatalf("seed title failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/?q=dune", nil)
		rec := httptest.NewRecorder()
		f.app.Router().ServeHTTP(rec, req)

		body := rec.Body.String()
		if !strings.Contains(body, "Dune") {
			t.Error("expected matching title in response")
		}
		if strings.Contains(body, "The Bear") {
			t.Error("non-matching title should be filtered out")
		}
	})

	t.Run("rejects unsupported methods", func(t *testing.T) {
		f := setupApp(t)

		req := httptest.NewRequest(http.MethodDelete, "/users", nil)
		rec := httptest.NewRecorder()
		f.app.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}

func TestUserForms(t *testing.T) {
	t.Run("create redirects with a message", func(t *testing.T) {
		f := setupApp(t)
		router := f.app.Router()

		rec := postForm(t, router, "/users", url.Values{
			"name":  {"Sam"},
			"email": {"sam@example.com"},
		})

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected redirect, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.Contains(loc, "msg=") {
			t.Errorf("expected success message in %s", loc)
		}

		users, err := f.users.List(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(users) != 1 {
			t.Errorf("expected 1 user, got %d", len(users))
		}
	})

	t.Run("duplicate email redirects with the error", func(t *testing.T) {
		f := setupApp(t)
		router := f.app.Router()

		postForm(t, router, "/users", url.Values{"name": {"Sam"}, "email": {"sam@example.com"}})
		rec := postForm(t, router, "/users", url.Values{"name": {"Sam II"}, "email": {"sam@example.com"}})

		loc := rec.Header().Get("Location")
		if !strings.Contains(loc, "err=") {
			t.Errorf("expected error in redirect, got %s", loc)
		}
	})
}

func TestWatchlistForms(t *testing.T) {
	f := setupApp(t)
	ctx := context.Background()
	router := f.app.Router()

	user, err := f.users.Create(ctx, "Sam", "sam@example.com")
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	title, err := f.titles.Add(ctx, "Dune", "movie", "Sci-Fi")
	if err != nil {
		t.Fatalf("seed title failed: %v", err)
	}

	t.Run("add entry", func(t *testing.T) {
		rec := postForm(t, router, "/watchlist", url.Values{
			"user_id":  {user.ID},
			"movie_id": {title.ID},
			"status":   {"planning"},
		})

		if loc := rec.Header().Get("Location"); !strings.Contains(loc, "msg=") {
			t.Fatalf("expected success, got %s", loc)
		}

		entries, err := f.watchlist.ForUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("blank rating means not supplied, junk is rejected", func(t *testing.T) {
		entries, err := f.watchlist.ForUser(ctx, user.ID)
		if err != nil || len(entries) == 0 {
			t.Fatalf("missing seed entry: %v", err)
		}
		entryID := entries[0].ID

		rec := postForm(t, router, "/watchlist/update", url.Values{
			"watchlist_id": {entryID},
			"status":       {"watched"},
			"rating":       {""},
		})
		if loc := rec.Header().Get("Location"); !strings.Contains(loc, "msg=") {
			t.Fatalf("expected success, got %s", loc)
		}

		rec = postForm(t, router, "/watchlist/update", url.Values{
			"watchlist_id": {entryID},
			"rating":       {"lots"},
		})
		if loc := rec.Header().Get("Location"); !strings.Contains(loc, "err=") {
			t.Errorf("expected rating error, got %s", loc)
		}
	})

	t.Run("watchlist view resolves title names", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?user="+user.ID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Dune") {
			t.Error("expected resolved title name in watchlist view")
		}
	})

	t.Run("remove entry", func(t *testing.T) {
		entries, err := f.watchlist.ForUser(ctx, user.ID)
		if err != nil || len(entries) == 0 {
			t.Fatalf("missing seed entry: %v", err)
		}

		rec := postForm(t, router, "/watchlist/delete", url.Values{
			"watchlist_id": {entries[0].ID},
		})
		if loc := rec.Header().Get("Location"); !strings.Contains(loc, "msg=") {
			t.Fatalf("expected success, got %s", loc)
		}

		remaining, err := f.watchlist.ForUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("entry still present: %+v", remaining)
		}
	})
}
