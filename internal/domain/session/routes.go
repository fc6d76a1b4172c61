package session

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public session routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/session/personal", handler.ConfirmPersonal)
}
