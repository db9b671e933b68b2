package catalog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/getpagdata", handler.GetPagData)
	r.GET("/getdata", handler.GetData)
}
