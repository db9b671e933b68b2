package response

import (
	"github.com/gin-gonic/gin"
)

// Every write endpoint answers with a human-readable message field;
// extra payload keys (event, worker, ...) ride alongside it.
type body map[string]any

// Message writes {"message": ...}.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, body{"message": message})
}

// MessageWith writes {"message": ..., <key>: <payload>}.
func MessageWith(c *gin.Context, status int, message, key string, payload any) {
	c.JSON(status, body{"message": message, key: payload})
}

// Error writes the uniform failure body. Callers pass the user-safe
// message only; causes stay in logs.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, body{"message": message})
}

// Page is the envelope of the paginated search endpoint.
type Page struct {
	Data        any   `json:"data"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// NewPage computes the page count with ceiling division.
func NewPage(data any, total int64, page, pageSize int) Page {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Page{
		Data:        data,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
