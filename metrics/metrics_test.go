package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopByDefault(t *testing.T) {
	// Meters work without an initialized backend.
	Counter("noop_counter").Add(1)
	CounterVec("noop_vec", []string{"kind"}).AddWithLabel(1, map[string]string{"kind": "x"})
	Gauge("noop_gauge").Set(5)
	Histogram("noop_histogram", nil).Observe(9)
}

func TestLazyLoad(t *testing.T) {
	calls := 0
	loader := LazyLoad(func() int {
		calls++
		return 7
	})
	assert.Equal(t, 7, loader())
	assert.Equal(t, 7, loader())
	assert.Equal(t, 1, calls)
}

func TestPrometheusMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	Counter("test_count").Add(3)
	Counter("test_count").Add(2)
	CounterVec("test_vec_count", []string{"outcome"}).
		AddWithLabel(4, map[string]string{"outcome": "won"})
	Gauge("test_gauge").Set(11)
	Histogram("test_histogram", []int64{0, 10, 100}).Observe(42)

	server := httptest.NewServer(HTTPHandler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, namespace+"_test_count 5")
	assert.Contains(t, text, `outcome="won"`)
	assert.Contains(t, text, namespace+"_test_gauge 11")
	assert.True(t, strings.Contains(text, namespace+"_test_histogram_count 1"))
}
