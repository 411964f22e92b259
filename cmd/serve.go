package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"cropai-modelhub/internal/api"
	"cropai-modelhub/internal/catalog"
	"cropai-modelhub/internal/database"
	"cropai-modelhub/internal/services"
	"cropai-modelhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	pingTimeout     = 2 * time.Second
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	log := logger.Named("server")
	gin.SetMode(a.cfg.GinMode)

	ds, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := ds.Close(context.Background()); err != nil {
			log.Warn("Failed to close document store", zap.Error(err))
		}
	}()

	rdb, err := database.ConnectRedis(ctx, a.cfg)
	if err != nil {
		log.Warn("Redis unavailable, notifications will only be logged", zap.Error(err))
	} else {
		defer rdb.Close()
	}

	engine := services.NewFilterEngine(catalog.Records())
	router := api.NewRouter(a.cfg, api.Dependencies{
		Engine:   engine,
		Pipeline: services.NewSubmissionPipeline(ds, services.NewLogNotifier()),
		Redis:    rdb,
		Ping: func() error {
			pctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
			defer cancel()
			return ds.Ping(pctx)
		},
	})

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Request contexts end with the process so open event streams
		// return before Shutdown waits on them.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			zap.String("addr", a.cfg.HTTPAddr),
			zap.String("store", a.cfg.StoreDriver),
			zap.Int("models", len(engine.Records())))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
