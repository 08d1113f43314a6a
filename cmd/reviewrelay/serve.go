package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/reviewrelay/internal/config"
	"github.com/dropDatabas3/reviewrelay/internal/email"
	"github.com/dropDatabas3/reviewrelay/internal/http/server"
	"github.com/dropDatabas3/reviewrelay/internal/observability/logger"
	"github.com/dropDatabas3/reviewrelay/internal/util"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP (POST /send-review)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Named("serve")

	h, err := server.BuildHandler(cfg, server.Options{})
	if err != nil {
		return err
	}
	srv := server.NewHTTPServer(cfg, h)

	// Solo informativo: el resolver se vuelve a evaluar en cada request
	if tr, err := email.NewResolver(cfg.SMTP).Resolve(); err != nil {
		log.Warn("SMTP not configured; POST /send-review will answer 500 until SMTP_* is set")
	} else {
		log.Info("SMTP transport resolved",
			logger.Transport(tr.Kind()),
			logger.String("smtp_user", util.MaskEmail(tr.Username())),
			logger.String("smtp_pass", util.MaskSecret(cfg.SMTP.Pass)),
		)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", logger.Err(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
