package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongosession/pkg/metrics"
	"github.com/dmitrymomot/mongosession/pkg/session"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	ctx := context.Background()
	store := session.New(session.NewMemoryCollection(), session.WithObserver(c))

	h, err := store.Load(ctx, session.Concurrent, "")
	require.NoError(t, err)
	_, err = store.Save(ctx, session.Concurrent, h, session.SaveOptions{})
	require.NoError(t, err)
	_, err = store.Load(ctx, session.Concurrent, h.ID)
	require.NoError(t, err)

	c.SessionsPurged(3)
	c.SessionsPurged(0)

	expected := `
# HELP mongo_session_store_events_total Session store operations by outcome.
# TYPE mongo_session_store_events_total counter
mongo_session_store_events_total{event="created"} 1
mongo_session_store_events_total{event="loaded"} 1
mongo_session_store_events_total{event="saved"} 1
# HELP mongo_session_store_purged_total Expired session records removed by purges.
# TYPE mongo_session_store_purged_total counter
mongo_session_store_purged_total 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"mongo_session_store_events_total", "mongo_session_store_purged_total"))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	c.SessionEvent(session.EventDropped)

	w := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mongo_session_store_events_total{event="dropped"} 1`)
}
