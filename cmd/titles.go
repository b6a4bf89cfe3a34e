package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/shared"
	"github.com/urfave/cli/v3"
)

// TitlesAdd catalogs a new title.
func (r *Runner) TitlesAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("title")
	if name == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	title, err := app.titles.Add(ctx, name, cmd.String("type"), cmd.String("genre"))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Added %s (%s)\n  ID: %s\n", title.Name, title.Type, title.ID)
}

// TitlesList prints the whole catalog.
func (r *Runner) TitlesList(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	titles, err := app.titles.List(ctx)
	if err != nil {
		return err
	}

	return r.printTitles(cmd, titles)
}

// TitlesSearch matches the keyword against names, or names and genres with --all.
func (r *Runner) TitlesSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	var titles []models.Title
	if cmd.Bool("all") {
		titles, err = app.titles.SearchAll(ctx, query)
	} else {
		titles, err = app.titles.Search(ctx, query)
	}
	if err != nil {
		return err
	}

	return r.printTitles(cmd, titles)
}

// TitlesGenres prints the distinct genres in the catalog.
func (r *Runner) TitlesGenres(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	genres, err := app.titles.Genres(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(genres, cmd.Bool("pretty"))
	}
	for _, genre := range genres {
		r.writePlain("%s\n", genre)
	}
	return nil
}

// TitlesUpdate applies a partial update to a title.
func (r *Runner) TitlesUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: title ID", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	upd := models.TitleUpdate{
		Name:  optionalFlag(cmd, "title"),
		Type:  optionalFlag(cmd, "type"),
		Genre: optionalFlag(cmd, "genre"),
	}

	title, err := app.titles.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated %s (%s)\n", title.Name, title.Type)
}

// TitlesDelete removes a title from the catalog.
func (r *Runner) TitlesDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: title ID", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	if err := app.titles.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted title %s\n", id)
}

func (r *Runner) printTitles(cmd *cli.Command, titles []models.Title) error {
	if cmd.Bool("json") {
		return r.writeJSON(titles, cmd.Bool("pretty"))
	}

	r.writePlain("%d title(s)\n", len(titles))
	for _, title := range titles {
		line := fmt.Sprintf("  %s  %s (%s)", title.ID, title.Name, title.Type)
		if title.Genre != "" {
			line += " - " + title.Genre
		}
		r.writePlain("%s\n", line)
	}
	return nil
}
