package repair

import (
	"net/http"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("repair.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("repair.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("repair request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// CreateMachineRepair appends a machine repair record.
func (h *Handler) CreateMachineRepair(c *gin.Context) {
	h.create(c, MachineRepairsFile)
}

// CreateCircuitRepair appends a circuit repair record.
func (h *Handler) CreateCircuitRepair(c *gin.Context) {
	h.create(c, CircuitRepairsFile)
}

func (h *Handler) create(c *gin.Context, defaultFile string) {
	fileName := c.DefaultQuery("fileName", defaultFile)

	var record Record
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("repair record binding failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "Repair record body is required")
		return
	}

	stored, err := h.service.Append(c.Request.Context(), fileName, record)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": stored})
}
