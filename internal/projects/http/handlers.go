package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpapi "github.com/ecap-org/ecap-directory/internal/api/http"
	"github.com/ecap-org/ecap-directory/internal/locale"
	"github.com/ecap-org/ecap-directory/internal/projects/domain"
)

// listResponse mirrors domain.Page with localized items.
type listResponse struct {
	Items      []domain.Localized `json:"projects"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

func queryFrom(c *gin.Context) domain.Query {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return domain.Query{
		Search:     c.Query("search"),
		IndustryID: c.Query("industryId"),
		CountryID:  c.Query("countryId"),
		Page:       page,
		Limit:      limit,
	}
}

func (h *Handler) list(c *gin.Context, defaultLimit int) {
	page, err := h.projects.Query(c.Request.Context(), queryFrom(c), defaultLimit)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	l, ok := locale.Parse(c.Query("locale"))
	if !ok {
		c.JSON(http.StatusOK, page)
		return
	}
	c.JSON(http.StatusOK, listResponse{
		Items:      domain.Localize(page.Items, l),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// ListPublic serves GET /projects
func (h *Handler) ListPublic(c *gin.Context) {
	h.list(c, domain.PublicPageSize)
}

// ListAdmin serves GET /admin/projects
func (h *Handler) ListAdmin(c *gin.Context) {
	h.list(c, domain.AdminPageSize)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	if l, ok := locale.Parse(c.Query("locale")); ok {
		d := p.DisplayIn(l)
		c.JSON(http.StatusOK, domain.Localized{Project: *p, Display: &d})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req domain.Fields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.projects.Create(c.Request.Context(), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req domain.Fields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.projects.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpapi.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
