// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configFlag is shared by every command that touches the record store.
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

// setupCommand handles database initialization and rollback.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
		},
	}
}

// authCommand handles registration and login state.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage registration and login",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Register a new account and log in",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Log in with email and password",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Forget the current login",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the current login",
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.AuthWhoami,
			},
		},
	}
}

// usersCommand handles user management operations.
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "users",
		Aliases: []string{"user"},
		Usage:   "User management",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a user without credentials",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
				},
				Action: r.UsersAdd,
			},
			{
				Name:   "list",
				Usage:  "List all users",
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.UsersList,
			},
			{
				Name:  "get",
				Usage: "Show one user by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.UsersGet,
			},
			{
				Name:  "update",
				Usage: "Update a user's name, email or password",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "name", Usage: "New display name"},
					&cli.StringFlag{Name: "email", Usage: "New email address"},
					&cli.StringFlag{Name: "password", Usage: "New password"},
				},
				Action: r.UsersUpdate,
			},
			{
				Name:  "rm",
				Usage: "Delete a user (watchlist entries are kept)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.UsersDelete,
			},
		},
	}
}

// titlesCommand handles catalog operations.
func titlesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "titles",
		Aliases: []string{"title"},
		Usage:   "Catalog management (movies, shows, anime)",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a title to the catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "type", Usage: "movie, show or anime", Required: true},
					&cli.StringFlag{Name: "genre", Usage: "Genre (optional)"},
				},
				Action: r.TitlesAdd,
			},
			{
				Name:   "list",
				Usage:  "List the whole catalog",
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.TitlesList,
			},
			{
				Name:  "search",
				Usage: "Search titles by keyword",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: append([]cli.Flag{
					configFlag(),
					&cli.BoolFlag{Name: "all", Usage: "Match genres as well as names"},
				}, jsonFlags()...),
				Action: r.TitlesSearch,
			},
			{
				Name:   "genres",
				Usage:  "List distinct genres in the catalog",
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.TitlesGenres,
			},
			{
				Name:  "update",
				Usage: "Update a title's name, type or genre",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "title", Usage: "New title"},
					&cli.StringFlag{Name: "type", Usage: "New type"},
					&cli.StringFlag{Name: "genre", Usage: "New genre"},
				},
				Action: r.TitlesUpdate,
			},
			{
				Name:  "rm",
				Usage: "Delete a title from the catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.TitlesDelete,
			},
		},
	}
}

// watchlistCommand handles per-user watchlist operations.
func watchlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "watchlist",
		Aliases: []string{"wl"},
		Usage:   "Watchlist management",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a title to a user's watchlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "user", Usage: "User ID (defaults to the current login)"},
					&cli.StringFlag{Name: "title", Usage: "Title ID", Required: true},
					&cli.StringFlag{Name: "status", Usage: "watched, planning or dropped", Value: "planning"},
					&cli.IntFlag{Name: "rating", Usage: "Rating 1-10"},
					&cli.StringFlag{Name: "review", Usage: "Review text"},
				},
				Action: r.WatchlistAdd,
			},
			{
				Name:  "list",
				Usage: "Show a user's watchlist",
				Flags: append([]cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "user", Usage: "User ID (defaults to the current login)"},
					&cli.StringFlag{Name: "status", Usage: "Filter by status"},
					&cli.StringFlag{Name: "genre", Usage: "Filter by genre"},
				}, jsonFlags()...),
				Action: r.WatchlistList,
			},
			{
				Name:  "update",
				Usage: "Update an entry's status, rating or review",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "status", Usage: "New status"},
					&cli.IntFlag{Name: "rating", Usage: "New rating 1-10"},
					&cli.StringFlag{Name: "review", Usage: "New review"},
				},
				Action: r.WatchlistUpdate,
			},
			{
				Name:  "rm",
				Usage: "Remove an entry from a watchlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.WatchlistRemove,
			},
			{
				Name:  "export",
				Usage: "Export a user's watchlist",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "user", Usage: "User ID (defaults to the current login)"},
					&cli.StringFlag{Name: "format", Usage: "csv, markdown or text", Value: "text"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path (defaults to stdout)"},
				},
				Action: r.WatchlistExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "menu"},
		Usage:   "Launch the interactive terminal menu",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}

// serveCommand returns the web UI command.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the form-based web UI",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "host", Usage: "Bind address (overrides config)"},
			&cli.IntFlag{Name: "port", Usage: "Port (overrides config)"},
		},
		Action: r.Serve,
	}
}
