package events

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the event feed route. The handler performs
// its own token check because WebSocket clients authenticate via query
// parameter, not the Authorization header.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/admin/events", handler.Stream)
}
