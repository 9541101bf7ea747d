package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/metrics"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Deps is everything the HTTP layer needs from the outside.
type Deps struct {
	Service     service.WindowService
	Logger      zerolog.Logger
	Metrics     *metrics.Metrics    // optional
	Gatherer    prometheus.Gatherer // optional, serves /metrics
	CORSOrigins []string
}

// NewEngine builds a gin engine with the standard middleware chain and all routes.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(d.Logger))
	if d.Metrics != nil {
		r.Use(Metrics(d.Metrics))
	}
	cors := DefaultCORSConfig()
	if len(d.CORSOrigins) > 0 {
		cors.AllowOrigins = d.CORSOrigins
	}
	r.Use(CORS(cors))

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
	Register(r, d.Service)
	return r
}

// Register mounts all public routes on the given engine.
// The window service doubles as the readiness probe target.
func Register(r *gin.Engine, svc service.WindowService) {
	h := NewHealthHandler(svc)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewWindowHandler(svc).Register(api)
	}
}
