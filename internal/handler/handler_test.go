package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/handler"
	"github.com/maxviazov/pagewindow/internal/metrics"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPing wraps a real service and reports it as not ready.
type failingPing struct {
	service.WindowService
	err error
}

func (f failingPing) Ping(context.Context) error { return f.err }

func newService(t *testing.T, settings service.Settings) service.WindowService {
	t.Helper()
	svc, err := service.NewWindowService(settings, nil, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func newRouter(t *testing.T, svc service.WindowService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return handler.NewEngine(handler.Deps{Service: svc, Logger: zerolog.Nop()})
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	return do(r, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestHealth(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))
	for _, path := range []string{"/live", "/ready", "/api/v1/health/live", "/api/v1/health/ready"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	down := newRouter(t, failingPing{WindowService: newService(t, service.Settings{}), err: errors.New("draining")})
	w := get(down, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "draining")
	assert.Equal(t, http.StatusOK, get(down, "/live").Code)
}

func TestReadiness_NoTarget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewHealthHandler(nil)
	r.GET("/ready", h.Readiness)
	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/ready").Code)
}

func TestWindow_JSON(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	w := get(r, "/api/v1/window?limit=10&offset=20&sort=-name")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.NotEmpty(t, w.Header().Get("ETag"))
	assert.JSONEq(t, `{
		"window": {"maxRows": 10, "offset": 20, "order": [{"field": "name", "ascending": false}]},
		"range": "offset",
		"sort": "signed"
	}`, w.Body.String())
}

func TestWindow_Conventions(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{
		DefaultOrder: pagination.Order{pagination.Asc("id")},
	}))

	tests := []struct {
		name      string
		target    string
		rangeHdr  string
		wantMax   int
		wantOff   int
		wantRange pagination.RangeConvention
		wantSort  pagination.SortConvention
		wantOrder []pagination.SortField
	}{
		{
			name:      "range header beats query",
			target:    "/api/v1/window?max=5&offset=3",
			rangeHdr:  "items=0-24",
			wantMax:   25,
			wantRange: pagination.RangeHeader,
			wantSort:  pagination.SortDefault,
			wantOrder: []pagination.SortField{pagination.Asc("id")},
		},
		{
			name:      "page with grails sort",
			target:    "/api/v1/window?max=10&page=3&sort=name&order=DESC",
			wantMax:   10,
			wantOff:   20,
			wantRange: pagination.RangePage,
			wantSort:  pagination.SortGrails,
			wantOrder: []pagination.SortField{pagination.Desc("name")},
		},
		{
			name:      "start index with dojo sort",
			target:    "/api/v1/window?count=5&startIndex=11&sort(%2Bname,-id)",
			wantMax:   5,
			wantOff:   10,
			wantRange: pagination.RangeStartIndex,
			wantSort:  pagination.SortDojo,
			wantOrder: []pagination.SortField{pagination.Asc("name"), pagination.Desc("id")},
		},
		{
			name:      "bracketed repeats fold",
			target:    "/api/v1/window?sort[]=a,asc&sort[]=b:descending",
			wantMax:   pagination.Unbounded,
			wantRange: pagination.RangeNone,
			wantSort:  pagination.SortSuffix,
			wantOrder: []pagination.SortField{pagination.Asc("a"), pagination.Desc("b")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.rangeHdr != "" {
				req.Header.Set("Range", tt.rangeHdr)
			}
			w := do(r, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var got struct {
				Window struct {
					MaxRows int                    `json:"maxRows"`
					Offset  int                    `json:"offset"`
					Order   []pagination.SortField `json:"order"`
				} `json:"window"`
				Range pagination.RangeConvention `json:"range"`
				Sort  pagination.SortConvention  `json:"sort"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantMax, got.Window.MaxRows)
			assert.Equal(t, tt.wantOff, got.Window.Offset)
			assert.Equal(t, tt.wantOrder, got.Window.Order)
			assert.Equal(t, tt.wantRange, got.Range)
			assert.Equal(t, tt.wantSort, got.Sort)
		})
	}
}

func TestWindow_PlainText(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/window?max=25&start=50&sort=name,-id", nil)
	req.Header.Set("Accept", "text/plain, application/json;q=0.5")
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "maxRows=25 offset=50 order=name:asc,id:desc\nrange=offset sort=signed\n", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/window", nil)
	req.Header.Set("Accept", "text/*")
	w = do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maxRows=unbounded offset=0 order=\nrange=none sort=none\n", w.Body.String())
}

func TestWindow_NotAcceptable(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/window", nil)
	req.Header.Set("Accept", "image/png")
	w := do(r, req)
	assert.Equal(t, http.StatusNotAcceptable, w.Code)
	assert.Contains(t, w.Body.String(), "not_acceptable")
}

func TestWindow_ETag(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	first := get(r, "/api/v1/window?limit=5")
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/window?limit=5", nil)
	req.Header.Set("If-None-Match", etag)
	w := do(r, req)
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())

	other := get(r, "/api/v1/window?limit=6")
	assert.NotEqual(t, etag, other.Header().Get("ETag"))
}

func TestWindow_Range(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	w := get(r, "/api/v1/window/range?total=12&limit=5&offset=10")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "items 10-11/12", w.Header().Get("Content-Range"))
	assert.JSONEq(t, `[10, 11]`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/window/range?total=100", nil)
	req.Header.Set("Range", "items=0-2")
	w = do(r, req)
	assert.Equal(t, "items 0-2/100", w.Header().Get("Content-Range"))
	assert.JSONEq(t, `[0, 1, 2]`, w.Body.String())

	w = get(r, "/api/v1/window/range?total=3&offset=10")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestWindow_RangeInvalidTotal(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	for _, q := range []string{"", "?total=abc", "?total=-1", "?total=10001"} {
		w := get(r, "/api/v1/window/range"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Contains(t, w.Body.String(), `"field":"total"`, q)
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	w := get(r, "/live")
	assert.NotEmpty(t, w.Header().Get(handler.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.HeaderRequestID, "abc-123")
	w = do(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(handler.HeaderRequestID))
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := handler.NewEngine(handler.Deps{
		Service:     newService(t, service.Settings{}),
		Logger:      zerolog.Nop(),
		CORSOrigins: []string{"https://app.example.com"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/window", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := do(r, req)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Range")
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)
	svc, err := service.NewWindowService(service.Settings{}, m, zerolog.Nop())
	require.NoError(t, err)

	r := handler.NewEngine(handler.Deps{Service: svc, Logger: zerolog.Nop(), Metrics: m, Gatherer: reg})

	require.Equal(t, http.StatusOK, get(r, "/api/v1/window?limit=3").Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/window", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WindowsTotal.WithLabelValues("limit", "none")))

	w := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_window_parsed_total")
}

func TestDocs(t *testing.T) {
	r := newRouter(t, newService(t, service.Settings{}))

	w := get(r, "/openapi.yaml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/window")
	lastModified := w.Header().Get("Last-Modified")
	require.NotEmpty(t, lastModified)

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	req.Header.Set("If-Modified-Since", lastModified)
	assert.Equal(t, http.StatusNotModified, do(r, req).Code)

	w = get(r, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/docs", w.Header().Get("Location"))
}
