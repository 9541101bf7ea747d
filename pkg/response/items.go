package response

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/pkg/pagination"
)

// HeaderContentRange is the header dojo-style stores read the page bounds from.
const HeaderContentRange = "Content-Range"

// ContentRange renders "items <start>-<end>/<total>" for a page of a collection.
// A nil window means offset 0 and max 0. end never exceeds total-1 and never
// drops below 0.
func ContentRange(w *pagination.Window, total int) string {
	start, size := 0, 0
	if w != nil {
		start, size = w.Offset(), w.Max()
	}
	last := total
	if size <= math.MaxInt-start {
		last = min(start+size, total)
	}
	end := max(last-1, 0)
	return fmt.Sprintf("items %d-%d/%d", start, end, total)
}

// WriteItems writes items as a JSON array with a Content-Range header.
// total is the size of the whole collection; a negative total means items
// is the whole collection.
func WriteItems[T any](c *gin.Context, items []T, w *pagination.Window, total int) {
	if items == nil {
		items = []T{}
	}
	if total < 0 {
		total = len(items)
	}
	c.Header(HeaderContentRange, ContentRange(w, total))
	c.JSON(http.StatusOK, items)
}

// ObjectRef identifies one entity touched by a write.
type ObjectRef struct {
	Type string `json:"type"`
	ID   any    `json:"id"`
}

// WriteCreated reports newly created entities with 201.
func WriteCreated(c *gin.Context, typ string, ids []any, extra map[string]any) {
	writeVerb(c, http.StatusCreated, "created", typ, ids, extra)
}

// WriteUpdated reports updated entities.
func WriteUpdated(c *gin.Context, typ string, ids []any, extra map[string]any) {
	writeVerb(c, http.StatusOK, "updated", typ, ids, extra)
}

// WriteDeleted reports deleted entities.
func WriteDeleted(c *gin.Context, typ string, ids []any, extra map[string]any) {
	writeVerb(c, http.StatusOK, "deleted", typ, ids, extra)
}

func writeVerb(c *gin.Context, status int, verb, typ string, ids []any, extra map[string]any) {
	body := make(map[string]any, len(extra)+3)
	for k, v := range extra {
		body[k] = v
	}
	objects := make([]ObjectRef, 0, len(ids))
	for _, id := range ids {
		objects = append(objects, ObjectRef{Type: typ, ID: id})
	}
	body["success"] = true
	body["message"] = fmt.Sprintf("Objects %s successfully", verb)
	body["objects"] = objects
	c.JSON(status, body)
}
