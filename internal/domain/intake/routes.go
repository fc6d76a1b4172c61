package intake

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public intake routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/intake/submit", handler.Submit)
	r.GET("/intake/state", handler.State)
}

// RegisterAdminRoutes registers admin submission routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	submissions := r.Group("/submissions")
	{
		submissions.GET("", handler.ListSubmissions)
		submissions.GET("/stats", handler.GetStats)
	}
}
