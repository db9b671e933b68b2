package catalog

import (
	"net/http"
	"strconv"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Query params with fixed meaning; everything else is a filter.
var reservedParams = map[string]bool{
	"dataType":  true,
	"sortField": true,
	"sortOrder": true,
	"page":      true,
	"pageSize":  true,
}

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("catalog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("catalog request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func collectFilters(c *gin.Context) map[string]string {
	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}
	return filters
}

// GetPagData serves pre-filtered, pre-sorted, paginated collection data.
func (h *Handler) GetPagData(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "30"))

	q := PageQuery{
		Collection: c.Query("dataType"),
		SortField:  c.DefaultQuery("sortField", "DataTime"),
		SortOrder:  c.DefaultQuery("sortOrder", "desc"),
		Page:       page,
		PageSize:   pageSize,
		Filters:    collectFilters(c),
	}

	result, err := h.service.GetPage(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetData serves a whole collection, sorted.
func (h *Handler) GetData(c *gin.Context) {
	q := ListQuery{
		Collection: c.Query("dataType"),
		SortField:  c.DefaultQuery("sortField", "DateTime"),
		SortOrder:  c.DefaultQuery("sortOrder", "asc"),
	}

	docs, err := h.service.GetAll(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": docs})
}
