// Package metrics defines and registers the custom Prometheus metrics of the
// user registry. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init through promauto, and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_registry"

// ── Store metrics ─────────────────────────────────────────────────────────────

// UsersAddedTotal counts records appended to the store.
var UsersAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_added_total",
		Help:      "Total number of user records added to the store.",
	},
)

// UsersRemovedTotal counts Remove calls, whether or not the id was present.
var UsersRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_remove_calls_total",
		Help:      "Total number of remove-by-id calls.",
	},
)

// UserLookupsTotal counts lookups by id.
// Label:
//   - result: "found" or "absent"
var UserLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_lookups_total",
		Help:      "Total number of lookups by id, labelled by result (found/absent).",
	},
	[]string{"result"},
)

// UsersStored reports the store size observed by the last Count call.
var UsersStored = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users_stored",
		Help:      "Number of user records in the store at the last count.",
	},
)

// StoreOperationDuration measures repository calls.
// Label:
//   - operation: "add", "find", "remove" or "count"
var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Duration of user store operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheLookupsTotal counts Redis read-through cache decisions.
// Label:
//   - result: "hit", "miss" or "error"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of user cache lookups, labelled by result (hit/miss/error).",
	},
	[]string{"result"},
)
