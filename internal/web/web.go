// Package web implements the form-based web UI over the service layer.
//
// One page of HTML forms drives the same service operations as the CLI and
// TUI: user management, catalog management and per-user watchlists. Handlers
// collect form input, invoke a service, and redirect back to the dashboard
// with the outcome (service error messages are shown verbatim). Per the
// partial-update convention of form widgets, an input left blank is treated
// as "not supplied".
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/server"
	"github.com/desertthunder/wlx/internal/services"
	"golang.org/x/time/rate"
)

//go:embed templates/*.html
var templateFiles embed.FS

// App holds the web UI's dependencies.
type App struct {
	logger    *log.Logger
	users     *services.UserService
	titles    *services.TitleService
	watchlist *services.WatchlistService
	tmpl      *template.Template
}

// NewApp creates the web application over the given services.
func NewApp(logger *log.Logger, users *services.UserService, titles *services.TitleService, watchlist *services.WatchlistService) (*App, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &App{
		logger:    logger,
		users:     users,
		titles:    titles,
		watchlist: watchlist,
		tmpl:      tmpl,
	}, nil
}

// Router builds the routing table with logging and throttling applied.
func (a *App) Router() *server.BasicRouter {
	router := server.NewBasicRouter()
	router.Use(server.Logging(a.logger))
	router.Use(server.Throttle(rate.Limit(20), 40))

	router.Handle(http.MethodGet, "/", http.HandlerFunc(a.handleIndex))
	router.Handle(http.MethodPost, "/users", http.HandlerFunc(a.handleCreateUser))
	router.Handle(http.MethodPost, "/users/update", http.HandlerFunc(a.handleUpdateUser))
	router.Handle(http.MethodPost, "/users/delete", http.HandlerFunc(a.handleDeleteUser))
	router.Handle(http.MethodPost, "/titles", http.HandlerFunc(a.handleAddTitle))
	router.Handle(http.MethodPost, "/titles/update", http.HandlerFunc(a.handleUpdateTitle))
	router.Handle(http.MethodPost, "/titles/delete", http.HandlerFunc(a.handleDeleteTitle))
	router.Handle(http.MethodPost, "/watchlist", http.HandlerFunc(a.handleAddEntry))
	router.Handle(http.MethodPost, "/watchlist/update", http.HandlerFunc(a.handleUpdateEntry))
	router.Handle(http.MethodPost, "/watchlist/delete", http.HandlerFunc(a.handleDeleteEntry))

	return router
}

// indexData is what the dashboard template renders.
type indexData struct {
	Users        []models.User
	Titles       []models.Title
	Watchlist    []formatterRow
	WatchlistFor *models.User
	Query        string
	Status       string
	Genre        string
	Message      string
	Error        string
}

// formatterRow is a watchlist entry resolved against the catalog for display.
type formatterRow struct {
	Entry models.WatchlistEntry
	Title string
	Type  string
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	data := indexData{
		Query:   q.Get("q"),
		Status:  q.Get("status"),
		Genre:   q.Get("genre"),
		Message: q.Get("msg"),
		Error:   q.Get("err"),
	}

	var err error
	if data.Users, err = a.users.List(ctx); err != nil {
		a.renderError(w, err)
		return
	}

	if data.Query != "" {
		data.Titles, err = a.titles.SearchAll(ctx, data.Query)
	} else {
		data.Titles, err = a.titles.List(ctx)
	}
	if err != nil {
		a.renderError(w, err)
		return
	}

	if userID := q.Get("user"); userID != "" {
		if err := a.loadWatchlist(r, userID, &data); err != nil {
			data.Error = err.Error()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		a.logger.Error("failed to render dashboard", "error", err)
	}
}

// loadWatchlist resolves a user's (optionally filtered) watchlist for display.
func (a *App) loadWatchlist(r *http.Request, userID string, data *indexData) error {
	ctx := r.Context()

	user, err := a.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	data.WatchlistFor = user

	var entries []models.WatchlistEntry
	switch {
	case data.Genre != "":
		joined, err := a.watchlist.ForUserByGenre(ctx, userID, data.Genre)
		if err != nil {
			return err
		}
		for _, row := range joined {
			data.Watchlist = append(data.Watchlist, formatterRow{
				Entry: row.WatchlistEntry,
				Title: row.Title,
				Type:  string(row.TitleType),
			})
		}
		return nil
	case data.Status != "":
		entries, err = a.watchlist.ForUserByStatus(ctx, userID, data.Status)
	default:
		entries, err = a.watchlist.ForUser(ctx, userID)
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		row := formatterRow{Entry: entry, Title: entry.MovieID, Type: "unknown"}
		if title, err := a.titles.Get(ctx, entry.MovieID); err == nil {
			row.Title = title.Name
			row.Type = string(title.Type)
		}
		data.Watchlist = append(data.Watchlist, row)
	}
	return nil
}

func (a *App) renderError(w http.ResponseWriter, err error) {
	a.logger.Error("request failed", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// redirect sends the browser back to the dashboard carrying the outcome.
func (a *App) redirect(w http.ResponseWriter, r *http.Request, msg string, err error) {
	target := "/"
	if err != nil {
		target += "?err=" + template.URLQueryEscaper(err.Error())
	} else if msg != "" {
		target += "?msg=" + template.URLQueryEscaper(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// formValue returns a pointer to the named form field, nil when blank.
func formValue(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}
