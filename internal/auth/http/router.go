package http

import "github.com/gin-gonic/gin"

// Register mounts /login publicly and /me behind requireAdmin.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.GET("/me", requireAdmin, h.Me)
}
