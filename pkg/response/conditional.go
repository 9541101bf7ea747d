package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NotModifiedSince answers 304 when the client's If-Modified-Since is not
// older than modified. It returns true when the response has been written.
func NotModifiedSince(c *gin.Context, modified time.Time) bool {
	raw := c.GetHeader("If-Modified-Since")
	if raw == "" {
		return false
	}
	since, err := http.ParseTime(raw)
	if err != nil {
		return false
	}
	// header dates carry whole seconds only
	if modified.Truncate(time.Second).After(since) {
		return false
	}
	c.AbortWithStatus(http.StatusNotModified)
	return true
}

// NotModifiedETag answers 304 when If-None-Match equals etag exactly.
func NotModifiedETag(c *gin.Context, etag string) bool {
	raw := c.GetHeader("If-None-Match")
	if raw == "" || raw != etag {
		return false
	}
	c.Header("ETag", etag)
	c.AbortWithStatus(http.StatusNotModified)
	return true
}

// Redirect sends the client to url with the given 3xx code.
func Redirect(c *gin.Context, code int, url string) {
	c.Redirect(code, url)
	c.Abort()
}
