package workforce

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/getworkers", handler.GetWorkers)
	r.POST("/addworker", handler.CreateWorker)
	r.PATCH("/updateworker/:id", handler.UpdateWorker)
	r.DELETE("/deleteworker/:id", handler.DeleteWorker)

	r.POST("/addabsence", handler.CreateAbsence)
	r.PATCH("/updateabsence/:eventId", handler.UpdateAbsence)
	r.DELETE("/deleteabsence/:eventId", handler.DeleteAbsence)
}
