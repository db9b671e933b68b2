package auth

import (
	"net/http"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("login binding failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user and password are required"})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		c.JSON(httpErr.Status, gin.H{"success": false, "message": httpErr.Message})
		return
	}

	c.JSON(http.StatusOK, resp)
}
