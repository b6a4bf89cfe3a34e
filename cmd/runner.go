package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wlx/internal/repositories"
	"github.com/desertthunder/wlx/internal/services"
	"github.com/desertthunder/wlx/internal/session"
	"github.com/desertthunder/wlx/internal/shared"
	"github.com/desertthunder/wlx/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger swaps the runner's logger (the TUI redirects logs to a file).
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, usersCommand, titlesCommand, watchlistCommand, tuiCommand, serveCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// app bundles an open store connection with the service layer built on it.
type app struct {
	db        *sql.DB
	users     *services.UserService
	titles    *services.TitleService
	watchlist *services.WatchlistService
}

// connect loads config from the command's --config flag, opens the record
// store and wires repositories and services. The returned closer releases
// the connection.
func (r *Runner) connect(configPath string) (*app, func(), error) {
	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := shared.LoadConfig(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		config = loaded
		r.config = loaded
	}

	db, err := shared.NewDatabase(config.Database.Driver, config.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	s := store.NewSQLStore(db, config.Database.Driver)
	userRepo := repositories.NewUserRepository(s)
	titleRepo := repositories.NewTitleRepository(s)
	watchlistRepo := repositories.NewWatchlistRepository(s)

	return &app{
		db:        db,
		users:     services.NewUserService(userRepo),
		titles:    services.NewTitleService(titleRepo),
		watchlist: services.NewWatchlistService(watchlistRepo, userRepo, titleRepo),
	}, func() { db.Close() }, nil
}

// sessionPath resolves where the current login is stored.
func (r *Runner) sessionPath() (string, error) {
	if r.config != nil && r.config.Session.Path != "" {
		return r.config.Session.Path, nil
	}
	return session.DefaultPath()
}

// currentSession loads the persisted login, or nil when nobody is logged in.
func (r *Runner) currentSession() *session.Session {
	path, err := r.sessionPath()
	if err != nil {
		return nil
	}
	sess, err := session.Load(path)
	if err != nil {
		return nil
	}
	return &sess
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// optionalFlag returns a pointer to the flag's value, nil when unset or empty.
func optionalFlag(cmd *cli.Command, name string) *string {
	v := cmd.String(name)
	if v == "" {
		return nil
	}
	return &v
}

// optionalRating returns a pointer to the rating flag, nil when left at zero.
func optionalRating(cmd *cli.Command, name string) *int {
	v := int(cmd.Int(name))
	if v == 0 {
		return nil
	}
	return &v
}
