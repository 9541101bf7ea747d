package handler

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/maxviazov/pagewindow/pkg/accept"
	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/maxviazov/pagewindow/pkg/response"
)

const (
	mimeJSON = "application/json"
	mimeText = "text/plain"

	// maxRangeTotal caps the synthetic collection served by /window/range.
	maxRangeTotal = 10000
)

var windowTypes = []string{mimeJSON, mimeText}

// WindowHandler exposes the parsed page window of a request.
type WindowHandler struct {
	svc service.WindowService
}

func NewWindowHandler(svc service.WindowService) *WindowHandler {
	return &WindowHandler{svc: svc}
}

// Register mounts the window routes on g behind the Window middleware.
func (h *WindowHandler) Register(g *gin.RouterGroup) {
	w := g.Group("/window", Window(h.svc))
	{
		w.GET("", h.Describe)
		w.GET("/range", h.Range)
	}
}

// Describe returns the normalized window and the conventions it was read from.
// GET /window
func (h *WindowHandler) Describe(c *gin.Context) {
	d, ok := DescriptorFrom(c)
	if !ok {
		response.WriteError(c, fmt.Errorf("window middleware not installed"))
		return
	}

	mime := mimeJSON
	if c.GetHeader("Accept") != "" {
		picked, ok := accept.FromRequest(c.Request).Preferred(windowTypes)
		if !ok {
			response.WriteError(c, service.ErrNotAcceptable)
			return
		}
		mime = picked
	}

	body, err := json.Marshal(d)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	etag := descriptorETag(mime, body)
	if response.NotModifiedETag(c, etag) {
		return
	}
	c.Header("ETag", etag)
	c.Header("Vary", "Accept")

	if mime == mimeText {
		c.String(http.StatusOK, formatDescriptor(d))
		return
	}
	c.Data(http.StatusOK, mimeJSON+"; charset=utf-8", body)
}

// Range serves the row indices the window selects out of a collection of
// total rows, with the matching Content-Range header.
// GET /window/range?total=N
func (h *WindowHandler) Range(c *gin.Context) {
	w, ok := WindowFrom(c)
	if !ok {
		response.WriteError(c, fmt.Errorf("window middleware not installed"))
		return
	}

	total, err := strconv.Atoi(c.Query("total"))
	if err != nil || total < 0 || total > maxRangeTotal {
		response.WriteError(c, service.NewInvalidInput([]service.FieldError{{
			Field:   "total",
			Message: fmt.Sprintf("must be an integer between 0 and %d", maxRangeTotal),
		}}))
		return
	}

	start := min(w.Offset(), total)
	end := min(w.End(), total)
	rows := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, i)
	}
	response.WriteItems(c, rows, &w, total)
}

func descriptorETag(mime string, body []byte) string {
	h := fnv.New64a()
	h.Write([]byte(mime))
	h.Write(body)
	return fmt.Sprintf(`"%x"`, h.Sum64())
}

// formatDescriptor renders d as two lines:
//
//	maxRows=25 offset=50 order=name:asc,id:desc
//	range=page sort=suffix
func formatDescriptor(d pagination.Descriptor) string {
	var b strings.Builder
	maxRows := "unbounded"
	if !d.Window.IsUnbounded() {
		maxRows = strconv.Itoa(d.Window.Max())
	}
	fmt.Fprintf(&b, "maxRows=%s offset=%d order=", maxRows, d.Window.Offset())
	for i, f := range d.Window.Order() {
		if i > 0 {
			b.WriteByte(',')
		}
		dir := "desc"
		if f.Ascending {
			dir = "asc"
		}
		b.WriteString(f.Field + ":" + dir)
	}
	fmt.Fprintf(&b, "\nrange=%s sort=%s\n", d.Range, d.Sort)
	return b.String()
}
