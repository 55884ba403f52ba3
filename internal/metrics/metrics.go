package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FavoritesOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petadoption_favorites_ops_total",
		Help: "Favorites operations by op and outcome (ok, fault).",
	}, []string{"op", "outcome"})

	FavoritesFaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petadoption_favorites_faults_total",
		Help: "Persistence faults masked by the favorites store, by op and kind (read, decode, write).",
	}, []string{"op", "kind"})

	FilterResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "petadoption_filter_results",
		Help:    "Number of pets returned by a catalog filter.",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	InquiriesSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "petadoption_inquiries_submitted_total",
		Help: "Adoption inquiries recorded.",
	})

	CatalogReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "petadoption_catalog_reloads_total",
		Help: "Catalog file reloads by status (ok, error).",
	}, []string{"status"})

	CatalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "petadoption_catalog_pets",
		Help: "Number of pets currently loaded in the catalog.",
	})
)
