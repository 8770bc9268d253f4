package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/ecap-org/ecap-directory/internal/api/http"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
)

func (h *Handler) ListIndustries(c *gin.Context) {
	list, err := h.industries.List(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetIndustry(c *gin.Context) {
	industry, err := h.industries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, industry)
}

func (h *Handler) CreateIndustry(c *gin.Context) {
	var req domain.IndustryFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	industry, err := h.industries.Create(c.Request.Context(), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, industry)
}

func (h *Handler) UpdateIndustry(c *gin.Context) {
	var req domain.IndustryFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	industry, err := h.industries.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, industry)
}

func (h *Handler) DeleteIndustry(c *gin.Context) {
	if err := h.industries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
