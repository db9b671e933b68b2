package workforce

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
	l := zap.L().Named("workforce.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workforce.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("workforce request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	h.logger.Warn("workforce request binding failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetWorkers(c *gin.Context) {
	workers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

func (h *Handler) CreateWorker(c *gin.Context) {
	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	worker, err := h.service.CreateWorker(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.MessageWith(c, http.StatusCreated, "Worker created", "worker", worker)
}

func (h *Handler) UpdateWorker(c *gin.Context) {
	id := c.Param("id")

	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	worker, err := h.service.UpdateWorker(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.MessageWith(c, http.StatusOK, "Worker updated", "worker", worker)
}

func (h *Handler) DeleteWorker(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteWorker(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Worker deleted")
}

func (h *Handler) CreateAbsence(c *gin.Context) {
	var req CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	if err := h.service.CreateAbsence(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Absence event created")
}

func (h *Handler) UpdateAbsence(c *gin.Context) {
	token := c.Param("eventId")

	var req UpdateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindingError(c, err)
		return
	}

	event, err := h.service.UpdateAbsence(c.Request.Context(), token, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.MessageWith(c, http.StatusOK, "Absence event updated", "event", event)
}

func (h *Handler) DeleteAbsence(c *gin.Context) {
	token := c.Param("eventId")

	if err := h.service.DeleteAbsence(c.Request.Context(), token); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Absence event deleted")
}
