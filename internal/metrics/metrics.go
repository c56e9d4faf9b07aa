// Package metrics exposes Prometheus instrumentation for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moodvillage"

// Registry is the Prometheus registry for all server metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// StorageOperationsTotal counts storage calls by backend, operation, and
// outcome so the dashboards can tell a struggling database apart from a
// healthy in-memory fallback.
var StorageOperationsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_operations_total",
		Help:      "Total number of storage operations by backend and outcome",
	},
	[]string{"backend", "operation", "outcome"},
)

// RSVPUpdatesTotal counts RSVP writes by resulting status.
var RSVPUpdatesTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rsvp_updates_total",
		Help:      "Total number of RSVP writes by status",
	},
	[]string{"status"},
)

// LanternsReleasedTotal counts lanterns released by mood.
var LanternsReleasedTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lanterns_released_total",
		Help:      "Total number of lanterns released by mood",
	},
	[]string{"mood"},
)
