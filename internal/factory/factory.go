package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/pickleball-scorekeeper/internal/dependencies/clock"
	"github.com/mcoot/pickleball-scorekeeper/internal/dependencies/random"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/idgen"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/match"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/modes"
	"github.com/mcoot/pickleball-scorekeeper/internal/services/roster"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage/memory"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage/nop"
	redisstorage "github.com/mcoot/pickleball-scorekeeper/internal/storage/redis"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
	StorageTypeNop    = "nop"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    idgen.IDGenerator

	// Services
	ModeRegistry    *modes.Registry
	MatchController *match.Controller
	RosterService   *roster.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis", "sqlite" or "nop")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, closer, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, idgen.New(clk, rnd), logger)
	app.closer = closer
	return app, nil
}

func openStorage(cfg Config) (storage.Store, io.Closer, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil, nil
	case StorageTypeNop:
		return nop.New(), nil, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, store, nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be one of memory, redis, sqlite, nop", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, rnd random.Random, ids idgen.IDGenerator, logger *slog.Logger) *App {
	registry := modes.New(store, logger)
	matchController := match.NewController(store, registry, logger)
	rosterService := roster.New(store, ids, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		IDs:             ids,
		ModeRegistry:    registry,
		MatchController: matchController,
		RosterService:   rosterService,
	}
}

// Close releases the storage backend, if it holds a connection
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
