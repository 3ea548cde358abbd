package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "acampamento_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// Registrations tracks registration submissions by outcome
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acampamento_registrations_total",
			Help: "Number of registration submissions",
		},
		[]string{"outcome", "lista_espera"},
	)

	// CapacityChecks tracks capacity gate decisions
	CapacityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acampamento_capacity_checks_total",
			Help: "Number of capacity gate checks",
		},
		[]string{"decision"},
	)

	// StatusTransitions tracks staff status transitions
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acampamento_status_transitions_total",
			Help: "Number of enrollment status transitions",
		},
		[]string{"to_status"},
	)

	// EmailNotifications tracks confirmation email deliveries
	EmailNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acampamento_email_notifications_total",
			Help: "Number of confirmation email attempts",
		},
		[]string{"status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acampamento_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acampamento_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "acampamento_active_connections",
			Help: "Number of active connections",
		},
	)

	// StorageUploads tracks blob storage uploads
	StorageUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acampamento_storage_uploads_total",
			Help: "Number of proof-of-payment uploads",
		},
		[]string{"status"},
	)
)
