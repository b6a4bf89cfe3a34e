package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/wlx/internal/session"
	"github.com/desertthunder/wlx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister creates an account with a password digest and logs it in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	user, err := app.users.Register(ctx, cmd.String("name"), cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}

	path, err := r.sessionPath()
	if err != nil {
		return err
	}
	if err := session.Save(path, session.New(user)); err != nil {
		return err
	}

	r.logger.Info("registered", "user", user.ID, "email", user.Email)
	return r.writePlain("✓ Registered and logged in as %s <%s>\n", user.Name, user.Email)
}

// AuthLogin authenticates and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	user, err := app.users.Authenticate(ctx, cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}

	path, err := r.sessionPath()
	if err != nil {
		return err
	}
	if err := session.Save(path, session.New(user)); err != nil {
		return err
	}

	return r.writePlain("✓ Logged in as %s <%s>\n", user.Name, user.Email)
}

// AuthLogout clears the persisted session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	path, err := r.sessionPath()
	if err != nil {
		return err
	}
	if err := session.Clear(path); err != nil {
		return err
	}
	return r.writePlain("✓ Logged out\n")
}

// AuthWhoami shows the persisted session.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	path, err := r.sessionPath()
	if err != nil {
		return err
	}

	sess, err := session.Load(path)
	if err != nil {
		return fmt.Errorf("%w: run 'wlx auth login'", shared.ErrNotAuthenticated)
	}

	if cmd.Bool("json") {
		return r.writeJSON(sess, cmd.Bool("pretty"))
	}
	return r.writePlain("%s <%s> (user %s), logged in since %s\n",
		sess.Name, sess.Email, sess.UserID, sess.LoginAt.Format("2006-01-02 15:04"))
}
