package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"apollotrainer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_Disabled(t *testing.T) {
	handler, shutdown, err := Setup(context.Background(), config.TelemetryConfig{})
	require.NoError(t, err)
	assert.Nil(t, handler)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_MetricsServeRecordedCounters(t *testing.T) {
	handler, shutdown, err := Setup(context.Background(), config.TelemetryConfig{
		ServiceName:    "apollotrainer-test",
		MetricsEnabled: true,
	})
	require.NoError(t, err)
	require.NotNil(t, handler)
	t.Cleanup(func() { shutdown(context.Background()) })

	counter, err := otel.Meter("telemetry-test").Int64Counter("test.hits")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_hits")
}
