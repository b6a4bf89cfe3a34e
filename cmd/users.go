package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/shared"
	"github.com/urfave/cli/v3"
)

// UsersAdd creates a user without credentials.
func (r *Runner) UsersAdd(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	user, err := app.users.Create(ctx, cmd.String("name"), cmd.String("email"))
	if err != nil {
		return err
	}

	return r.writePlain("✓ Created user %s <%s>\n  ID: %s\n", user.Name, user.Email, user.ID)
}

// UsersList prints all users.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	users, err := app.users.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, cmd.Bool("pretty"))
	}

	r.writePlain("%d user(s)\n", len(users))
	for _, user := range users {
		r.writePlain("  %s  %s <%s>\n", user.ID, user.Name, user.Email)
	}
	return nil
}

// UsersGet prints one user by ID.
func (r *Runner) UsersGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	user, err := app.users.Get(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}
	return r.writePlain("%s <%s>\n  ID: %s\n  Created: %s\n", user.Name, user.Email, user.ID, user.CreatedAt.Format("2006-01-02"))
}

// UsersUpdate applies a partial update to a user.
func (r *Runner) UsersUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	upd := models.UserUpdate{
		Name:     optionalFlag(cmd, "name"),
		Email:    optionalFlag(cmd, "email"),
		Password: optionalFlag(cmd, "password"),
	}

	user, err := app.users.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Updated user %s <%s>\n", user.Name, user.Email)
}

// UsersDelete removes a user. Watchlist entries are left in place.
func (r *Runner) UsersDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}

	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	if err := app.users.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted user %s\n", id)
}
