package repair

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/novareparmaq", handler.CreateMachineRepair)
	r.POST("/novareparcir", handler.CreateCircuitRepair)
}
