package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public admin login route
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/admin/login", handler.Login)
}
