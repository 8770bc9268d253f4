package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/ecap-org/ecap-directory/internal/api/http"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
)

func (h *Handler) ListCountries(c *gin.Context) {
	list, err := h.countries.List(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetCountry(c *gin.Context) {
	country, err := h.countries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *Handler) CreateCountry(c *gin.Context) {
	var req domain.CountryFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	country, err := h.countries.Create(c.Request.Context(), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

func (h *Handler) UpdateCountry(c *gin.Context) {
	var req domain.CountryFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	country, err := h.countries.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *Handler) DeleteCountry(c *gin.Context) {
	if err := h.countries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
