package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest("auth.me", http.StatusOK, 20*time.Millisecond)
	c.RecordRequest("auth.me", http.StatusNoContent, 10*time.Millisecond)
	c.RecordRequest("auth.me", http.StatusUnauthorized, 5*time.Millisecond)

	mf := findFamily(t, reg, "pronet_api_requests_total")
	counts := map[string]float64{}
	for _, m := range mf.GetMetric() {
		assert.Equal(t, "auth.me", labelValue(m, "endpoint"))
		counts[labelValue(m, "status_class")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"2xx": 2, "4xx": 1}, counts)

	hist := findFamily(t, reg, "pronet_api_request_duration_seconds")
	require.Len(t, hist.GetMetric(), 1)
	assert.Equal(t, uint64(3), hist.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestCollector_RecordTransportErrorAndUnauthorized(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordTransportError("profile.me")
	c.RecordUnauthorized()
	c.RecordUnauthorized()

	transport := findFamily(t, reg, "pronet_api_transport_errors_total")
	require.Len(t, transport.GetMetric(), 1)
	assert.Equal(t, float64(1), transport.GetMetric()[0].GetCounter().GetValue())

	unauthorized := findFamily(t, reg, "pronet_api_unauthorized_total")
	assert.Equal(t, float64(2), unauthorized.GetMetric()[0].GetCounter().GetValue())
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{
		200: "2xx",
		302: "3xx",
		404: "4xx",
		503: "5xx",
		0:   "unknown",
		700: "unknown",
	}
	for code, want := range tests {
		assert.Equal(t, want, statusClass(code), "code %d", code)
	}
}

func TestNewRouter_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordUnauthorized()

	srv := httptest.NewServer(NewRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "pronet_api_unauthorized_total 1")

	resp2, err := http.Post(srv.URL+"/metrics", "text/plain", nil)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}
