package conf

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type StoreKind string

const (
	StoreSQLite   StoreKind = "sqlite"
	StorePostgres StoreKind = "postgres"
	StoreMemory   StoreKind = "memory"
)

type App struct {
	HTTPBind       string `env:"HTTP_BIND" envDefault:":8080"`
	PrometheusBind string `env:"PROMETHEUS_BIND" envDefault:":2112"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogDevelopment switches to human-readable console logs.
	LogDevelopment bool `env:"LOG_DEVELOPMENT" envDefault:"false"`

	// Store is where items and history are persisted: sqlite, postgres or memory.
	Store StoreKind `env:"STORE" envDefault:"sqlite"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"prize-wheel.db"`

	// PostgresDSN is a DSN for the postgres, required for STORE=postgres.
	PostgresDSN string `env:"POSTGRES_DSN"`

	// DebugDB enables gorm query logging.
	DebugDB bool `env:"DEBUG_DB" envDefault:"false"`

	// SpinDuration is the time between spin start and settle.
	SpinDuration time.Duration `env:"SPIN_DURATION" envDefault:"4s"`

	// ExtraSpins is the number of full turns added to every spin.
	ExtraSpins int `env:"EXTRA_SPINS" envDefault:"5"`

	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"10"`

	MinItemsToSpin int `env:"MIN_ITEMS_TO_SPIN" envDefault:"2"`

	// DefaultItemsFile is a YAML file with the wheel used when nothing is persisted.
	DefaultItemsFile string `env:"DEFAULT_ITEMS_FILE"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// ShutdownTimeout limits waiting for a pending settle on exit.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func ParseEnv() (*App, error) {
	cfg := App{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
