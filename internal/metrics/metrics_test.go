package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkskytech/ieltsplan/internal/metrics"
)

func TestExportCounters(t *testing.T) {
	okBefore := testutil.ToFloat64(metrics.Exports.WithLabelValues("text", "ok"))
	errBefore := testutil.ToFloat64(metrics.Exports.WithLabelValues("text", "error"))

	metrics.ExportSucceeded("text")
	metrics.ExportSucceeded("text")
	metrics.ExportFailed("text")

	assert.Equal(t, okBefore+2, testutil.ToFloat64(metrics.Exports.WithLabelValues("text", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.Exports.WithLabelValues("text", "error")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	metrics.PlansGenerated.WithLabelValues("High").Inc()
	metrics.ObserveRequest(http.MethodPost, "/generate-plan", http.StatusOK, 25*time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `ieltsplan_plans_generated_total{intensity="High"}`)
	assert.Contains(t, string(body), "ieltsplan_http_request_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}
