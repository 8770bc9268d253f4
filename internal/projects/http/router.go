package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.ListPublic)
	rg.GET("/:id", h.Get)
	rg.POST("", requireAdmin, h.Create)
	rg.PUT("/:id", requireAdmin, h.Update)
	rg.DELETE("/:id", requireAdmin, h.Delete)
}

// RegisterAdmin attaches the admin listing. rg must already require an admin.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/projects", h.ListAdmin)
}
