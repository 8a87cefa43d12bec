package monitor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordModelQuery(t *testing.T) {
	counter := modelQueries.WithLabelValues("openrouter", "x-ai/grok-4", OutcomeSuccess)
	before := testutil.ToFloat64(counter)

	RecordModelQuery("openrouter", "x-ai/grok-4", OutcomeSuccess, 1500*time.Millisecond)
	RecordModelQuery("openrouter", "x-ai/grok-4", "upstream_status", 10*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, float64(1), testutil.ToFloat64(modelQueries.WithLabelValues("openrouter", "x-ai/grok-4", "upstream_status")))
}

func TestHandlerExposesCouncilMetrics(t *testing.T) {
	RecordModelQuery("openai", "gpt-4o", OutcomeSuccess, time.Second)
	RecordFanout(4, 2*time.Second)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)

	for _, name := range []string{
		"council_model_queries_total",
		"council_model_query_duration_seconds",
		"council_fanout_size",
		"council_fanout_duration_seconds",
	} {
		assert.True(t, strings.Contains(text, name), "missing metric %s", name)
	}
}
