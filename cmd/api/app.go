package main

import (
	"context"
	"io"

	"github.com/jmoiron/sqlx"

	"pet-adoption/internal/adapters/catalog/yamlfile"
	"pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/adapters/storage/sqlstore"
	"pet-adoption/internal/config"
	"pet-adoption/internal/domain/favorites"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/database"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/kv"
)

// app agrupa lo que comparten los comandos: config, logger, DB y catálogo.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	db      *sqlx.DB // nil = in-memory
	catalog *memory.PetRepo
}

func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
		Output: logOut,
	})

	items, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		catalog: memory.NewPetRepo(items),
	}

	if cfg.HasDB() {
		db, err := database.Open(cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, db, cfg.DB.Driver); err != nil {
			_ = db.Close()
			return nil, err
		}
		a.db = db
	}

	return a, nil
}

func loadCatalog(cfg *config.Config) ([]pets.Pet, error) {
	if cfg.Catalog.File != "" {
		return yamlfile.LoadFile(cfg.Catalog.File)
	}
	return yamlfile.Default()
}

func (a *app) kvStore() kv.Store {
	if a.db != nil {
		return sqlstore.NewKVStore(a.db, a.cfg.DB.Driver)
	}
	a.log.Warn("no database configured; favorites live in memory for this process only", nil)
	return memory.NewKVStore()
}

func (a *app) favorites() *favorites.Service {
	return favorites.NewService(a.kvStore(), a.log, favorites.Options{
		Key:     a.cfg.Favorites.Key,
		Timeout: a.cfg.Favorites.Timeout,
	})
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
