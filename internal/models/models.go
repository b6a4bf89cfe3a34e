package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/wlx/internal/shared"
)

// Status is the viewing state of a watchlist entry.
type Status string

const (
	StatusWatched  Status = "watched"
	StatusPlanning Status = "planning"
	StatusDropped  Status = "dropped"
)

// ParseStatus folds s to lowercase and validates it against the known statuses.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusWatched:
		return StatusWatched, nil
	case StatusPlanning:
		return StatusPlanning, nil
	case StatusDropped:
		return StatusDropped, nil
	default:
		return "", fmt.Errorf("%w (got %q)", shared.ErrInvalidStatus, s)
	}
}

// TitleType is the kind of catalog entry: movie, show or anime.
type TitleType string

const (
	TypeMovie TitleType = "movie"
	TypeShow  TitleType = "show"
	TypeAnime TitleType = "anime"
)

// ParseTitleType folds s to lowercase and validates it against the known types.
func ParseTitleType(s string) (TitleType, error) {
	switch TitleType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeMovie:
		return TypeMovie, nil
	case TypeShow:
		return TypeShow, nil
	case TypeAnime:
		return TypeAnime, nil
	default:
		return "", fmt.Errorf("%w (got %q)", shared.ErrInvalidTitleType, s)
	}
}

// User is a registered account. PasswordHash is empty for users created
// without credentials (the non-interactive `users add` path).
type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Title is a catalog entry for a movie, show or anime.
type Title struct {
	ID        string    `json:"movie_id"`
	Name      string    `json:"title"`
	Type      TitleType `json:"type"`
	Genre     string    `json:"genre,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WatchlistEntry links a User to a Title with per-pair viewing state.
// Rating is nil when the user has not rated the title.
type WatchlistEntry struct {
	ID        string    `json:"watchlist_id"`
	UserID    string    `json:"user_id"`
	MovieID   string    `json:"movie_id"`
	Status    Status    `json:"status"`
	Rating    *int      `json:"rating,omitempty"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate carries the fields of a partial user update. Nil means
// "leave unchanged".
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// Empty reports whether no field is supplied.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil
}

// TitleUpdate carries the fields of a partial title update.
type TitleUpdate struct {
	Name  *string
	Type  *string
	Genre *string
}

// Empty reports whether no field is supplied.
func (t TitleUpdate) Empty() bool {
	return t.Name == nil && t.Type == nil && t.Genre == nil
}

// EntryUpdate carries the fields of a partial watchlist entry update.
type EntryUpdate struct {
	Status *string
	Rating *int
	Review *string
}

// Empty reports whether no field is supplied.
func (e EntryUpdate) Empty() bool {
	return e.Status == nil && e.Rating == nil && e.Review == nil
}
