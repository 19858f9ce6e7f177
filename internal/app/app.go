// This package is used to initialize the application. It has dependencies on most
// other packages and wires config, persistence, the wheel engine and background jobs.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petuhovskiy/prize-wheel/internal/bgjobs"
	"github.com/petuhovskiy/prize-wheel/internal/conf"
	"github.com/petuhovskiy/prize-wheel/internal/log"
	"github.com/petuhovskiy/prize-wheel/internal/models"
	"github.com/petuhovskiy/prize-wheel/internal/repos"
	"github.com/petuhovskiy/prize-wheel/internal/wheel"
)

type App struct {
	Config   *conf.App
	Store    repos.Store
	Register *bgjobs.Register
	Session  *wheel.Session

	closers []io.Closer
}

func NewAppFromEnv(ctx context.Context) (*App, error) {
	cfg, err := conf.ParseEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config from env: %w", err)
	}
	return NewApp(ctx, cfg)
}

func NewApp(ctx context.Context, cfg *conf.App) (*App, error) {
	a := &App{
		Config:   cfg,
		Register: bgjobs.NewRegister(),
	}

	defaults := wheel.DefaultItems()
	if cfg.DefaultItemsFile != "" {
		items, err := wheel.LoadDefaultItems(cfg.DefaultItemsFile)
		if err != nil {
			return nil, err
		}
		defaults = items
		log.Info(ctx, "loaded default items", zap.String("file", cfg.DefaultItemsFile), zap.Int("count", len(items)))
	}

	store, err := a.openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	a.Store = store
	log.Info(ctx, "using store", zap.String("kind", string(cfg.Store)))

	a.Session = newSession(ctx, cfg, store, a.Register, defaults)
	return a, nil
}

func newSession(
	ctx context.Context,
	cfg *conf.App,
	store repos.Store,
	register *bgjobs.Register,
	defaults []models.Item,
) *wheel.Session {
	registry := wheel.LoadRegistry(ctx, store, defaults)
	history := wheel.LoadHistory(ctx, store, cfg.HistoryLimit)

	return wheel.NewSession(registry, history, wheel.Options{
		SpinDuration:   cfg.SpinDuration,
		ExtraSpins:     cfg.ExtraSpins,
		MinItemsToSpin: cfg.MinItemsToSpin,
		Scheduler:      bgjobs.NewTimerScheduler(register),
	})
}

func (a *App) openStore(cfg *conf.App) (repos.Store, error) {
	switch cfg.Store {
	case conf.StoreMemory:
		return repos.NewMemoryStore(), nil

	case conf.StoreSQLite:
		store, err := repos.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store)
		return store, nil

	case conf.StorePostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required")
		}
		db, err := connectDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return repos.NewGormStore(db)

	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Store)
	}
}

func connectDB(cfg *conf.App) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if cfg.DebugDB {
		db = db.Debug()
	}
	return db, nil
}

func (a *App) StartPrometheus(ctx context.Context) {
	a.Register.Go(func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: a.Config.PrometheusBind, Handler: mux}

		go func() {
			<-ctx.Done()
			_ = srv.Close()
		}()

		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "prometheus server error", zap.Error(err))
		}
	})
}

// Shutdown waits for background jobs, a pending settle included, and closes the store.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Register.WaitAll(ctx)
	for _, c := range a.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
