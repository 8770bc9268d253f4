package http

import "github.com/gin-gonic/gin"

// Register mounts the admin routes. rg must already require an authenticated admin.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListAdmins)
	rg.POST("", h.CreateAdmin)
	rg.DELETE("/:id", h.DeleteAdmin)
}
