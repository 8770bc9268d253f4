package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecap-org/ecap-directory/internal/admins/domain"
	httpapi "github.com/ecap-org/ecap-directory/internal/api/http"
	"github.com/ecap-org/ecap-directory/internal/auth"
)

// ListAdmins returns all admins, newest first
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *Handler) CreateAdmin(c *gin.Context) {
	var req domain.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	admin, err := h.adminService.Create(c.Request.Context(), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func (h *Handler) DeleteAdmin(c *gin.Context) {
	session, ok := auth.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
