package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/ecap-org/ecap-directory/internal/api/http"
	"github.com/ecap-org/ecap-directory/internal/auth"
	"github.com/ecap-org/ecap-directory/internal/auth/domain"
)

// Login verifies email and password and returns a bearer token
func (h *Handler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the profile of the authenticated admin
func (h *Handler) Me(c *gin.Context) {
	session, ok := auth.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.authService.Me(c.Request.Context(), session)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
