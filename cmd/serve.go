package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/wlx/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the web interface until the process is interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	host := r.config.Server.Host
	if flag := cmd.String("host"); flag != "" {
		host = flag
	}
	port := r.config.Server.Port
	if flag := cmd.Int("port"); flag != 0 {
		port = int(flag)
	}

	webApp, err := web.NewApp(r.logger, app.users, app.titles, app.watchlist)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	server := &http.Server{
		Addr:         addr,
		Handler:      webApp.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	r.logger.Info("starting server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
