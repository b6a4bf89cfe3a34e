package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/wlx/internal/formatter"
	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/shared"
	"github.com/urfave/cli/v3"
)

// resolveUserFlag returns the --user flag, falling back to the current login.
func (r *Runner) resolveUserFlag(cmd *cli.Command) (string, error) {
	if id := cmd.String("user"); id != "" {
		return id, nil
	}
	if sess := r.currentSession(); sess != nil {
		return sess.UserID, nil
	}
	return "", fmt.Errorf("%w: pass --user or run 'wlx auth login'", shared.ErrMissingArgument)
}

// WatchlistAdd adds a title to a user's watchlist.
func (r *Runner) WatchlistAdd(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	userID, err := r.resolveUserFlag(cmd)
	if err != nil {
		return err
	}

	entry, err := app.watchlist.Add(
		ctx,
		userID,
		cmd.String("title"),
		cmd.String("status"),
		optionalRating(cmd, "rating"),
		cmd.String("review"),
	)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Added to watchlist (%s)\n  Entry ID: %s\n", entry.Status, entry.ID)
}

// WatchlistList shows a user's watchlist, optionally filtered by status or genre.
func (r *Runner) WatchlistList(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	userID, err := r.resolveUserFlag(cmd)
	if err != nil {
		return err
	}

	if genre := cmd.String("genre"); genre != "" {
		rows, err := app.watchlist.ForUserByGenre(ctx, userID, genre)
		if err != nil {
			return err
		}
		if cmd.Bool("json") {
			return r.writeJSON(rows, cmd.Bool("pretty"))
		}
		r.writePlain("%d entr(ies)\n", len(rows))
		for _, row := range rows {
			r.writePlain("  %s  [%-8s] %s (%s)%s\n",
				row.WatchlistEntry.ID, row.Status, row.Title, row.Genre, ratingSuffix(row.Rating))
		}
		return nil
	}

	var entries []models.WatchlistEntry
	if status := cmd.String("status"); status != "" {
		entries, err = app.watchlist.ForUserByStatus(ctx, userID, status)
	} else {
		entries, err = app.watchlist.ForUser(ctx, userID)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	r.writePlain("%d entr(ies)\n", len(entries))
	for _, entry := range entries {
		name := entry.MovieID
		if title, err := app.titles.Get(ctx, entry.MovieID); err == nil {
			name = title.Name
		}
		r.writePlain("  %s  [%-8s] %s%s\n", entry.ID, entry.Status, name, ratingSuffix(entry.Rating))
		if entry.Review != "" {
			r.writePlain("      %s\n", entry.Review)
		}
	}
	return nil
}

// WatchlistUpdate applies a partial update to an entry.
func (r *Runner) WatchlistUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: entry ID", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	upd := models.EntryUpdate{
		Status: optionalFlag(cmd, "status"),
		Rating: optionalRating(cmd, "rating"),
		Review: optionalFlag(cmd, "review"),
	}

	entry, err := app.watchlist.UpdateEntry(ctx, id, upd)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated entry %s (%s)%s\n", entry.ID, entry.Status, ratingSuffix(entry.Rating))
}

// WatchlistRemove deletes an entry by ID.
func (r *Runner) WatchlistRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: entry ID", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	if err := app.watchlist.Remove(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Removed entry %s\n", id)
}

// WatchlistExport writes a user's watchlist as CSV, Markdown or plain text.
func (r *Runner) WatchlistExport(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	userID, err := r.resolveUserFlag(cmd)
	if err != nil {
		return err
	}

	user, err := app.users.Get(ctx, userID)
	if err != nil {
		return err
	}

	entries, err := app.watchlist.ForUser(ctx, userID)
	if err != nil {
		return err
	}

	export := &formatter.WatchlistExport{User: *user}
	for _, entry := range entries {
		item := formatter.Item{Entry: entry}
		if title, err := app.titles.Get(ctx, entry.MovieID); err == nil {
			item.Title = title
		}
		export.Items = append(export.Items, item)
	}

	var data []byte
	switch format := cmd.String("format"); format {
	case "csv":
		data, err = formatter.ExportToCSV(export)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(export)
	case "text", "txt":
		data, err = formatter.ExportToText(export)
	default:
		return fmt.Errorf("%w: format %q (use csv, markdown or text)", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	if output := cmd.String("output"); output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return r.writePlain("✓ Exported %d entr(ies) to %s\n", len(export.Items), output)
	}

	return r.writePlain("%s", data)
}

func ratingSuffix(rating *int) string {
	if rating == nil {
		return ""
	}
	return fmt.Sprintf("  %d/10", *rating)
}
