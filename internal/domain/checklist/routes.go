package checklist

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public checklist routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/checklist/unlock", handler.Unlock)
	r.GET("/checklist/download", handler.Download)
}

// RegisterAdminRoutes registers admin checklist routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/checklist/unlocks", handler.UnlockCount)
}
