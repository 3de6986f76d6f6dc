package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LiveObjects tracks registered objects.
	// Labels: kind (root, project, mesh)
	LiveObjects = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "zinspector",
			Subsystem: "registry",
			Name:      "live_objects",
			Help:      "Number of live objects in the registry by kind",
		},
		[]string{"kind"},
	)

	// PersistOperations counts project saves and loads.
	// Labels: op (save, load), result (success, error)
	PersistOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zinspector",
			Subsystem: "persist",
			Name:      "operations_total",
			Help:      "Total number of project save and load operations",
		},
		[]string{"op", "result"},
	)

	// PersistDuration tracks how long saves and loads take.
	// Labels: op (save, load)
	PersistDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "zinspector",
			Subsystem: "persist",
			Name:      "duration_seconds",
			Help:      "Duration of project save and load operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	// EventsPublished counts lifecycle events handed to the broker.
	// Labels: result (success, error)
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zinspector",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of object lifecycle events published",
		},
		[]string{"result"},
	)
)

// SetLiveObjects updates the live object gauge for kind.
func SetLiveObjects(kind string, n int) {
	LiveObjects.WithLabelValues(kind).Set(float64(n))
}

// RecordPersist records the outcome of a save or load.
func RecordPersist(op string, d time.Duration, err error) {
	PersistOperations.WithLabelValues(op, result(err)).Inc()
	PersistDuration.WithLabelValues(op).Observe(d.Seconds())
}

// RecordEventPublish records the outcome of an event publish.
func RecordEventPublish(err error) {
	EventsPublished.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
