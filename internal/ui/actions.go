package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/services"
	"github.com/desertthunder/wlx/internal/session"
	"github.com/desertthunder/wlx/internal/shared"
)

// Deps are the collaborators every menu action can reach. Session is nil
// when nobody is logged in.
type Deps struct {
	Users     *services.UserService
	Titles    *services.TitleService
	Watchlist *services.WatchlistService
	Session   *session.Session
}

// formField describes one input of a menu action's form.
type formField struct {
	label       string
	placeholder string
	secret      bool
}

// menuAction is one selectable operation: an optional form followed by a
// service call producing an [actionDoneMsg].
type menuAction struct {
	title  string
	desc   string
	fields []formField
	run    func(ctx context.Context, deps Deps, values []string) tea.Msg
}

// actionDoneMsg reports an operation's outcome: a browsable list for reads,
// a status line for writes, or an error shown verbatim.
type actionDoneMsg struct {
	status string
	items  []list.Item
	err    error
}

func menuActions() []menuAction {
	return []menuAction{
		{
			title: "Browse users",
			desc:  "All registered users",
			run: func(ctx context.Context, deps Deps, _ []string) tea.Msg {
				users, err := deps.Users.List(ctx)
				if err != nil {
					return actionDoneMsg{err: err}
				}
				items := make([]list.Item, len(users))
				for i, user := range users {
					items[i] = userItem{user: user}
				}
				return actionDoneMsg{items: items}
			},
		},
		{
			title: "Add user",
			desc:  "Register a new account",
			fields: []formField{
				{label: "Name", placeholder: "Ann"},
				{label: "Email", placeholder: "ann@example.com"},
				{label: "Password (optional)", secret: true},
			},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				var user *models.User
				var err error
				if values[2] != "" {
					user, err = deps.Users.Register(ctx, values[0], values[1], values[2])
				} else {
					user, err = deps.Users.Create(ctx, values[0], values[1])
				}
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: fmt.Sprintf("created user %s (%s)", user.Name, user.ID)}
			},
		},
		{
			title: "Update user",
			desc:  "Change name, email or password (blank = keep)",
			fields: []formField{
				{label: "User ID (blank = logged in)"},
				{label: "New name"},
				{label: "New email"},
				{label: "New password", secret: true},
			},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				userID, err := resolveUser(deps, values[0])
				if err != nil {
					return actionDoneMsg{err: err}
				}
				upd := models.UserUpdate{
					Name:     optional(values[1]),
					Email:    optional(values[2]),
					Password: optional(values[3]),
				}
				user, err := deps.Users.Update(ctx, userID, upd)
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: fmt.Sprintf("updated user %s", user.Name)}
			},
		},
		{
			title:  "Delete user",
			desc:   "Remove an account (watchlist rows are kept)",
			fields: []formField{{label: "User ID"}},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				if err := deps.Users.Delete(ctx, values[0]); err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: "user deleted"}
			},
		},
		{
			title: "Browse titles",
			desc:  "The whole catalog",
			run: func(ctx context.Context, deps Deps, _ []string) tea.Msg {
				titles, err := deps.Titles.List(ctx)
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{items: titleItems(titles)}
			},
		},
		{
			title:  "Search titles",
			desc:   "Match against title names and genres",
			fields: []formField{{label: "Keyword", placeholder: "inception"}},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				titles, err := deps.Titles.SearchAll(ctx, values[0])
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{items: titleItems(titles)}
			},
		},
		{
			title: "Add title",
			desc:  "Catalog a movie, show or anime",
			fields: []formField{
				{label: "Title", placeholder: "Inception"},
				{label: "Type", placeholder: "movie / show / anime"},
				{label: "Genre (optional)", placeholder: "sci-fi"},
			},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				title, err := deps.Titles.Add(ctx, values[0], values[1], values[2])
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: fmt.Sprintf("added %s (%s)", title.Name, title.ID)}
			},
		},
		{
			title: "Update title",
			desc:  "Change name, type or genre (blank = keep)",
			fields: []formField{
				{label: "Title ID"},
				{label: "New title"},
				{label: "New type"},
				{label: "New genre"},
			},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				upd := models.TitleUpdate{
					Name:  optional(values[1]),
					Type:  optional(values[2]),
					Genre: optional(values[3]),
				}
				title, err := deps.Titles.Update(ctx, values[0], upd)
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: fmt.Sprintf("updated %s", title.Name)}
			},
		},
		{
			title:  "Delete title",
			desc:   "Remove a catalog entry",
			fields: []formField{{label: "Title ID"}},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				if err := deps.Titles.Delete(ctx, values[0]); err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: "title deleted"}
			},
		},
		{
			title: "View watchlist",
			desc:  "A user's watchlist, optionally filtered",
			fields: []formField{
				{label: "User ID (blank = logged in)"},
				{label: "Status filter (optional)", placeholder: "watched / planning / dropped"},
				{label: "Genre filter (optional)"},
			},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				userID, err := resolveUser(deps, values[0])
				if err != nil {
					return actionDoneMsg{err: err}
				}

				if values[2] != "" {
					rows, err := deps.Watchlist.ForUserByGenre(ctx, userID, values[2])
					if err != nil {
						return actionDoneMsg{err: err}
					}
					items := make([]list.Item, len(rows))
					for i, row := range rows {
						items[i] = genreEntryItem{row: row}
					}
					return actionDoneMsg{items: items}
				}

				var entries []models.WatchlistEntry
				if values[1] != "" {
					entries, err = deps.Watchlist.ForUserByStatus(ctx, userID, values[1])
				} else {
					entries, err = deps.Watchlist.ForUser(ctx, userID)
				}
				if err != nil {
					return actionDoneMsg{err: err}
				}

				items := make([]list.Item, len(entries))
				for i, entry := range entries {
					item := entryItem{entry: entry}
					if title, err := deps.Titles.Get(ctx, entry.MovieID); err == nil {
						item.title = title.Name
					}
					items[i] = item
				}
				return actionDoneMsg{items: items}
			},
		},
		{
			title: "Add to watchlist",
			desc:  "Track a title for a user",
			fields: []formField{
				{label: "User ID (blank = logged in)"},
				{label: "Title ID"},
				{label: "Status", placeholder: "planning"},
				{label: "Rating 1-10 (optional)"},
				{label: "Review (optional)"},
			},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				userID, err := resolveUser(deps, values[0])
				if err != nil {
					return actionDoneMsg{err: err}
				}
				rating, err := ratingValue(values[3])
				if err != nil {
					return actionDoneMsg{err: err}
				}
				entry, err := deps.Watchlist.Add(ctx, userID, values[1], values[2], rating, values[4])
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: fmt.Sprintf("added entry %s (%s)", entry.ID, entry.Status)}
			},
		},
		{
			title: "Update watchlist entry",
			desc:  "Change status, rating or review (blank = keep)",
			fields: []formField{
				{label: "Entry ID"},
				{label: "New status"},
				{label: "New rating"},
				{label: "New review"},
			},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				rating, err := ratingValue(values[2])
				if err != nil {
					return actionDoneMsg{err: err}
				}
				upd := models.EntryUpdate{
					Status: optional(values[1]),
					Rating: rating,
					Review: optional(values[3]),
				}
				entry, err := deps.Watchlist.UpdateEntry(ctx, values[0], upd)
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: fmt.Sprintf("updated entry %s (%s)", entry.ID, entry.Status)}
			},
		},
		{
			title:  "Remove from watchlist",
			desc:   "Delete an entry by its ID",
			fields: []formField{{label: "Entry ID"}},
			run: func(ctx context.Context, deps Deps, values []string) tea.Msg {
				if err := deps.Watchlist.Remove(ctx, values[0]); err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: "entry removed"}
			},
		},
	}
}

func titleItems(titles []models.Title) []list.Item {
	items := make([]list.Item, len(titles))
	for i, title := range titles {
		items[i] = titleItem{title: title}
	}
	return items
}

// resolveUser falls back to the logged-in session when the user field is blank.
func resolveUser(deps Deps, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value != "" {
		return value, nil
	}
	if deps.Session != nil {
		return deps.Session.UserID, nil
	}
	return "", fmt.Errorf("%w: user ID (nobody is logged in)", shared.ErrMissingArgument)
}

// ratingValue parses an optional rating field; blank means not supplied.
func ratingValue(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%w: rating %q is not a number", shared.ErrInvalidArgument, value)
	}
	return &n, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
