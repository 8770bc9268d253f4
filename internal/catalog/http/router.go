package http

import "github.com/gin-gonic/gin"

// Register mounts /countries and /industries under rg. Reads are public,
// writes go through requireAdmin.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	countries := rg.Group("/countries")
	countries.GET("", h.ListCountries)
	countries.GET("/:id", h.GetCountry)
	countries.POST("", requireAdmin, h.CreateCountry)
	countries.PUT("/:id", requireAdmin, h.UpdateCountry)
	countries.DELETE("/:id", requireAdmin, h.DeleteCountry)

	industries := rg.Group("/industries")
	industries.GET("", h.ListIndustries)
	industries.GET("/:id", h.GetIndustry)
	industries.POST("", requireAdmin, h.CreateIndustry)
	industries.PUT("/:id", requireAdmin, h.UpdateIndustry)
	industries.DELETE("/:id", requireAdmin, h.DeleteIndustry)
}
