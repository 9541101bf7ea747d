package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxviazov/pagewindow/internal/metrics"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/maxviazov/pagewindow/pkg/querystring"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	requestIDKey  = "request_id"
	descriptorKey = "window_descriptor"
)

// RequestID propagates the caller's X-Request-ID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog writes one line per request once the handler chain has finished.
func AccessLog(logger zerolog.Logger) gin.HandlerFunc {
	l := logger.With().Str("module", "http").Str("component", "access").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = l.Error()
		case status >= 400:
			e = l.Warn()
		default:
			e = l.Info()
		}
		if len(c.Errors) > 0 {
			e = e.Str("errors", c.Errors.String())
		}
		e.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("request")
	}
}

// Metrics returns a middleware that records HTTP metrics.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath() // route pattern keeps label cardinality bounded
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		c.Next()

		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// DefaultCORSConfig lets browsers send Range and read Content-Range, which
// dojo-style stores depend on.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Accept", "Range", "If-None-Match", "If-Modified-Since", HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", "Content-Range", "ETag", HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
}

// CORS returns a CORS middleware with the given configuration.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

// Window parses the request's page window once and stores it on the context
// for handlers further down the chain.
func Window(svc service.WindowService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := querystring.FromRequest(c.Request)
		d := svc.Describe(c.Request.Context(), q, c.Request.Header.Get)
		c.Set(descriptorKey, d)
		c.Next()
	}
}

// DescriptorFrom returns the descriptor stored by the Window middleware.
func DescriptorFrom(c *gin.Context) (pagination.Descriptor, bool) {
	v, ok := c.Get(descriptorKey)
	if !ok {
		return pagination.Descriptor{}, false
	}
	d, ok := v.(pagination.Descriptor)
	return d, ok
}

// WindowFrom returns the window stored by the Window middleware.
func WindowFrom(c *gin.Context) (pagination.Window, bool) {
	d, ok := DescriptorFrom(c)
	return d.Window, ok
}
