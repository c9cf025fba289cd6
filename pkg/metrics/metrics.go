// Package metrics exports session store events as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/mongosession/pkg/session"
)

const namespace = "mongo_session"

// Collector is a session.Observer backed by Prometheus counters.
type Collector struct {
	events *prometheus.CounterVec
	purged prometheus.Counter
}

var _ session.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "events_total",
			Help:      "Session store operations by outcome.",
		}, []string{"event"}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "purged_total",
			Help:      "Expired session records removed by purges.",
		}),
	}

	reg.MustRegister(c.events, c.purged)
	return c
}

func (c *Collector) SessionEvent(kind session.EventKind) {
	c.events.WithLabelValues(string(kind)).Inc()
}

func (c *Collector) SessionsPurged(n int64) {
	if n > 0 {
		c.purged.Add(float64(n))
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
