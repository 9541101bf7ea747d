package handler

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/pkg/response"
)

// Minimal HTML that loads Swagger UI from a CDN and points to /openapi.yaml.
//
//go:embed swagger.html
var swaggerHTML []byte

//go:embed openapi.yaml
var openAPIDoc []byte

// docsModified is reported as Last-Modified; embedded docs change only with the binary.
var docsModified = time.Now().UTC().Truncate(time.Second)

// RegisterDocs mounts documentation endpoints at the root:
//   - GET /openapi.yaml: the embedded OpenAPI document
//   - GET /docs: Swagger UI rendering of it
//   - GET /: redirect to /docs
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", serveStatic("application/yaml; charset=utf-8", openAPIDoc))
	r.GET("/docs", serveStatic("text/html; charset=utf-8", swaggerHTML))
	r.GET("/", func(c *gin.Context) {
		response.Redirect(c, http.StatusFound, "/docs")
	})
}

func serveStatic(contentType string, data []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if response.NotModifiedSince(c, docsModified) {
			return
		}
		c.Header("Last-Modified", docsModified.Format(http.TimeFormat))
		c.Data(http.StatusOK, contentType, data)
	}
}
