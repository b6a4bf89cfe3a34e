package services_test

import (
	"testing"

	"github.com/desertthunder/wlx/internal/services"
	"github.com/desertthunder/wlx/internal/store"
	wlxtest "github.com/desertthunder/wlx/internal/testing"
)

type testServices struct {
	users     *services.UserService
	titles    *services.TitleService
	watchlist *services.WatchlistService
}

func setupServices(t *testing.T) (*store.SQLStore, testServices) {
	t.Helper()

	s, repos := wlxtest.SetupRepos(t)
	return s, testServices{
		users:     services.NewUserService(repos.Users),
		titles:    services.NewTitleService(repos.Titles),
		watchlist: services.NewWatchlistService(repos.Watchlist, repos.Users, repos.Titles),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
