package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoption/docs"
	"pet-adoption/internal/adapters/catalog/yamlfile"
	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/adapters/storage/sqlstore"
	"pet-adoption/internal/domain/favorites"
	"pet-adoption/internal/domain/inquiries"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/kv"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si viene, favoritos e inquiries van a SQL. Si no, in-memory.
	DB     *sqlx.DB
	Driver string

	// Catálogo compartido con el watcher. nil = seed embebido.
	Catalog *mem.PetRepo

	FavoritesKey     string
	FavoritesTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI (docs generados con swag init -g cmd/api/main.go)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	catalog := opts.Catalog
	if catalog == nil {
		seed, err := yamlfile.Default()
		if err != nil {
			log.Error("embedded catalog invalid; serving empty catalog", map[string]any{"err": err})
		}
		catalog = mem.NewPetRepo(seed)
	}

	var (
		kvStore     kv.Store
		inquiryRepo inquiries.Repository
	)
	if opts.DB != nil {
		kvStore = sqlstore.NewKVStore(opts.DB, opts.Driver)
		inquiryRepo = sqlstore.NewInquiriesRepo(opts.DB)
	} else {
		kvStore = mem.NewKVStore()
		inquiryRepo = mem.NewInquiryRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(catalog)
	favsSvc := favorites.NewService(kvStore, log, favorites.Options{
		Key:     opts.FavoritesKey,
		Timeout: opts.FavoritesTimeout,
	})
	inquiriesSvc := inquiries.NewService(inquiryRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, favsSvc)
	favorites.RegisterRoutes(r, favsSvc, petsSvc)
	inquiries.RegisterRoutes(r, inquiriesSvc, petsSvc)

	return r
}
