package system

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: func() time.Time { return time.Now().UTC() }}
}

// CurrentDateTime reports server time so frontends stamp records
// consistently regardless of client clocks.
func (h *Handler) CurrentDateTime(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dateTime": h.now().Format(time.RFC3339)})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
