package metrics_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/maxviazov/pagewindow/internal/metrics"
	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveWindow(t *testing.T) {
	m := metrics.New("test", prometheus.NewRegistry())
	p := pagination.NewParser()

	m.ObserveWindow(p.Inspect(url.Values{"limit": {"25"}, "sort": {"-a"}}, nil))
	m.ObserveWindow(p.Inspect(url.Values{"limit": {"10"}, "sort": {"b"}}, nil))
	m.ObserveWindow(p.Inspect(url.Values{}, nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.WindowsTotal.WithLabelValues("limit", "signed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WindowsTotal.WithLabelValues("none", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnboundedTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.WindowMaxRows))
}

func TestRecordHTTPRequest(t *testing.T) {
	m := metrics.New("", prometheus.NewRegistry())
	m.RecordHTTPRequest("GET", "/api/v1/window", 200, 5*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/window", 200, 7*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/window", "200")))
}
