package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/repositories"
)

var (
	_ list.Item = actionItem{}
	_ list.Item = userItem{}
	_ list.Item = titleItem{}
	_ list.Item = entryItem{}
)

// actionItem wraps a [menuAction] to implement [list.Item].
type actionItem struct {
	action menuAction
}

func (i actionItem) FilterValue() string { return i.action.title }
func (i actionItem) Title() string       { return i.action.title }
func (i actionItem) Description() string { return i.action.desc }

// userItem wraps [models.User] to implement [list.Item].
type userItem struct {
	user models.User
}

func (i userItem) FilterValue() string { return i.user.Name }
func (i userItem) Title() string       { return fmt.Sprintf("%s <%s>", i.user.Name, i.user.Email) }
func (i userItem) Description() string { return i.user.ID }

// titleItem wraps [models.Title] to implement [list.Item].
type titleItem struct {
	title models.Title
}

func (i titleItem) FilterValue() string { return i.title.Name }
func (i titleItem) Title() string       { return fmt.Sprintf("%s (%s)", i.title.Name, i.title.Type) }
func (i titleItem) Description() string {
	desc := i.title.ID
	if i.title.Genre != "" {
		desc = fmt.Sprintf("%s • %s", i.title.Genre, i.title.ID)
	}
	return desc
}

// entryItem wraps a watchlist entry, with its title name when resolved,
// to implement [list.Item].
type entryItem struct {
	entry models.WatchlistEntry
	title string
}

func (i entryItem) FilterValue() string { return i.title }
func (i entryItem) Title() string {
	name := i.title
	if name == "" {
		name = i.entry.MovieID
	}
	return fmt.Sprintf("[%s] %s", i.entry.Status, name)
}

func (i entryItem) Description() string {
	desc := i.entry.ID
	if i.entry.Rating != nil {
		desc = fmt.Sprintf("%d/10 • %s", *i.entry.Rating, desc)
	}
	if i.entry.Review != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.entry.Review)
	}
	return desc
}

// genreEntryItem wraps a genre-joined watchlist row.
type genreEntryItem struct {
	row repositories.GenreEntry
}

func (i genreEntryItem) FilterValue() string { return i.row.Title }
func (i genreEntryItem) Title() string {
	return fmt.Sprintf("[%s] %s (%s)", i.row.Status, i.row.Title, i.row.Genre)
}

func (i genreEntryItem) Description() string {
	desc := i.row.WatchlistEntry.ID
	if i.row.Rating != nil {
		desc = fmt.Sprintf("%d/10 • %s", *i.row.Rating, desc)
	}
	return desc
}
