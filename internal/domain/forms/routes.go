package forms

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the descriptor route
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/forms", handler.Describe)
}
