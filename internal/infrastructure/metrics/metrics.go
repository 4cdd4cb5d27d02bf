package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Entry metrics
	EntriesCreated *prometheus.CounterVec
	EntryAmount    *prometheus.HistogramVec
	EntryErrors    *prometheus.CounterVec

	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferAmount   prometheus.Histogram
	TransferErrors   prometheus.Counter

	// Wallet metrics
	WalletsCreated *prometheus.CounterVec

	// User metrics
	UsersCreated prometheus.Counter

	// Database metrics
	DBConnections prometheus.Gauge

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Entry metrics
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_entries_created_total",
				Help: "Total number of wallet entries created by type",
			},
			[]string{"type"},
		),
		EntryAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gowallet_entry_amount",
				Help:    "Entry amounts by type",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"type"},
		),
		EntryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_entry_errors_total",
				Help: "Total number of failed deposit/withdrawal attempts by type",
			},
			[]string{"type"},
		),

		// Transfer metrics
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gowallet_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gowallet_transfer_amount",
			Help:    "Transfer amounts in the source currency",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		TransferErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_transfer_errors_total",
			Help: "Total number of failed transfer attempts",
		}),

		// Wallet metrics
		WalletsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_wallets_created_total",
				Help: "Total number of wallets created by currency",
			},
			[]string{"currency"},
		),

		// User metrics
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_users_created_total",
			Help: "Total number of users created",
		}),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gowallet_db_connections",
			Help: "Current number of database connections",
		}),

		// Cache metrics
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_cache_hits_total",
			Help: "Total wallet cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_cache_misses_total",
			Help: "Total wallet cache misses",
		}),
	}
}
