package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/prize-wheel/internal/api"
	"github.com/petuhovskiy/prize-wheel/internal/app"
	"github.com/petuhovskiy/prize-wheel/internal/log"
)

func main() {
	_ = log.DefaultGlobals()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base, err := app.NewAppFromEnv(ctx)
	if err != nil {
		log.Fatal(ctx, "failed to init app", zap.Error(err))
	}

	if _, err := log.SetupGlobals(base.Config.LogLevel, base.Config.LogDevelopment); err != nil {
		log.Warn(ctx, "invalid log level, keeping default", zap.Error(err))
	}

	base.StartPrometheus(ctx)

	srv := &http.Server{
		Addr:              base.Config.HTTPBind,
		Handler:           api.NewServer(base.Session, base.Config.CORSOrigins).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info(ctx, "starting server", zap.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), base.Config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "http shutdown error", zap.Error(err))
	}
	if err := base.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "app shutdown error", zap.Error(err))
	}
	_ = zap.L().Sync()
}
