package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/shared"
)

func (a *App) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var err error
	if password := r.FormValue("password"); password != "" {
		_, err = a.users.Register(ctx, r.FormValue("name"), r.FormValue("email"), password)
	} else {
		_, err = a.users.Create(ctx, r.FormValue("name"), r.FormValue("email"))
	}

	a.redirect(w, r, "user created", err)
}

func (a *App) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	upd := models.UserUpdate{
		Name:     formValue(r, "name"),
		Email:    formValue(r, "email"),
		Password: formValue(r, "password"),
	}

	_, err := a.users.Update(r.Context(), r.FormValue("user_id"), upd)
	a.redirect(w, r, "user updated", err)
}

func (a *App) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	err := a.users.Delete(r.Context(), r.FormValue("user_id"))
	a.redirect(w, r, "user deleted", err)
}

func (a *App) handleAddTitle(w http.ResponseWriter, r *http.Request) {
	_, err := a.titles.Add(r.Context(), r.FormValue("title"), r.FormValue("type"), r.FormValue("genre"))
	a.redirect(w, r, "title added", err)
}

func (a *App) handleUpdateTitle(w http.ResponseWriter, r *http.Request) {
	upd := models.TitleUpdate{
		Name:  formValue(r, "title"),
		Type:  formValue(r, "type"),
		Genre: formValue(r, "genre"),
	}

	_, err := a.titles.Update(r.Context(), r.FormValue("movie_id"), upd)
	a.redirect(w, r, "title updated", err)
}

func (a *App) handleDeleteTitle(w http.ResponseWriter, r *http.Request) {
	err := a.titles.Delete(r.Context(), r.FormValue("movie_id"))
	a.redirect(w, r, "title deleted", err)
}

func (a *App) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	rating, err := ratingValue(r)
	if err != nil {
		a.redirect(w, r, "", err)
		return
	}

	_, err = a.watchlist.Add(
		r.Context(),
		r.FormValue("user_id"),
		r.FormValue("movie_id"),
		r.FormValue("status"),
		rating,
		r.FormValue("review"),
	)
	a.redirect(w, r, "added to watchlist", err)
}

func (a *App) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	rating, err := ratingValue(r)
	if err != nil {
		a.redirect(w, r, "", err)
		return
	}

	upd := models.EntryUpdate{
		Status: formValue(r, "status"),
		Rating: rating,
		Review: formValue(r, "review"),
	}

	_, err = a.watchlist.UpdateEntry(r.Context(), r.FormValue("watchlist_id"), upd)
	a.redirect(w, r, "watchlist entry updated", err)
}

func (a *App) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	err := a.watchlist.Remove(r.Context(), r.FormValue("watchlist_id"))
	a.redirect(w, r, "removed from watchlist", err)
}

// ratingValue parses the optional rating field; blank means not supplied.
func ratingValue(r *http.Request) (*int, error) {
	raw := r.FormValue("rating")
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: rating %q is not a number", shared.ErrInvalidArgument, raw)
	}
	return &n, nil
}
