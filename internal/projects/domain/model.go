package domain

import (
	"context"
	"time"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	catalog "github.com/ecap-org/ecap-directory/internal/catalog/domain"
	"github.com/ecap-org/ecap-directory/internal/locale"
)

// Project is a directory entry with its country and industry embedded.
type Project struct {
	ID         string           `json:"id"`
	NameEn     string           `json:"nameEn"`
	NameAr     string           `json:"nameAr"`
	NameFr     string           `json:"nameFr"`
	DescEn     string           `json:"descEn"`
	DescAr     string           `json:"descAr"`
	DescFr     string           `json:"descFr"`
	Website    string           `json:"website"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	CountryID  string           `json:"countryId"`
	IndustryID string           `json:"industryId"`
	Country    catalog.Country  `json:"country"`
	Industry   catalog.Industry `json:"industry"`
	LogoEn     string           `json:"logoEn"`
	LogoAr     string           `json:"logoAr"`
	LogoFr     string           `json:"logoFr"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func (p Project) Name() locale.Text {
	return locale.Text{En: p.NameEn, Ar: p.NameAr, Fr: p.NameFr}
}

func (p Project) Description() locale.Text {
	return locale.Text{En: p.DescEn, Ar: p.DescAr, Fr: p.DescFr}
}

func (p Project) Logo() locale.Text {
	return locale.Text{En: p.LogoEn, Ar: p.LogoAr, Fr: p.LogoFr}
}

// Fields carries a project write. On create every nil field is stored as "";
// on update nil fields keep their current value.
type Fields struct {
	NameEn     *string `json:"nameEn"`
	NameAr     *string `json:"nameAr"`
	NameFr     *string `json:"nameFr"`
	DescEn     *string `json:"descEn"`
	DescAr     *string `json:"descAr"`
	DescFr     *string `json:"descFr"`
	Website    *string `json:"website"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	CountryID  *string `json:"countryId"`
	IndustryID *string `json:"industryId"`
	LogoEn     *string `json:"logoEn"`
	LogoAr     *string `json:"logoAr"`
	LogoFr     *string `json:"logoFr"`
}

// Apply copies every non-nil field onto p.
func (f Fields) Apply(p *Project) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.NameEn, f.NameEn)
	set(&p.NameAr, f.NameAr)
	set(&p.NameFr, f.NameFr)
	set(&p.DescEn, f.DescEn)
	set(&p.DescAr, f.DescAr)
	set(&p.DescFr, f.DescFr)
	set(&p.Website, f.Website)
	set(&p.Email, f.Email)
	set(&p.Phone, f.Phone)
	set(&p.CountryID, f.CountryID)
	set(&p.IndustryID, f.IndustryID)
	set(&p.LogoEn, f.LogoEn)
	set(&p.LogoAr, f.LogoAr)
	set(&p.LogoFr, f.LogoFr)
}

const (
	// PublicPageSize is the default page size of the public listing.
	PublicPageSize = 6
	// AdminPageSize is the default page size of the admin listing.
	AdminPageSize = 10
	MaxPageSize   = 100
)

// Query filters and pages the project list. Empty filters match everything.
type Query struct {
	Search     string
	IndustryID string
	CountryID  string
	Page       int
	Limit      int
}

// Normalize clamps Page to at least 1 and Limit into [1, MaxPageSize],
// using defaultLimit when Limit is unset.
func (q Query) Normalize(defaultLimit int) Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Page is one page of query results.
type Page struct {
	Items      []Project `json:"projects"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

func NewPage(items []Project, total int, q Query) Page {
	if items == nil {
		items = []Project{}
	}
	pages := 0
	if q.Limit > 0 {
		pages = (total + q.Limit - 1) / q.Limit
	}
	return Page{Items: items, Total: total, Page: q.Page, Limit: q.Limit, TotalPages: pages}
}

var (
	ErrNotFound          = apperr.NotFound("project not found")
	ErrUnknownReference  = apperr.Validation("unknown country or industry")
	ErrEnglishRequired   = apperr.Validation("nameEn and descEn are required")
	ErrReferenceRequired = apperr.Validation("countryId and industryId are required")
)

// Repository persists projects.
type Repository interface {
	Get(ctx context.Context, id string) (*Project, error)
	// Query returns one page of matches, newest first, and the full match count.
	Query(ctx context.Context, q Query) ([]Project, int, error)
	// Create inserts p and fills ID and timestamps. Country and Industry are
	// populated from the referenced rows.
	Create(ctx context.Context, p *Project) error
	// Update overwrites every writable column of p.ID.
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
	// LogoURLs returns every non-empty logo reference across all projects.
	LogoURLs(ctx context.Context) ([]string, error)
}

// References resolves the catalog rows a project points at.
type References interface {
	CountryExists(ctx context.Context, id string) (bool, error)
	IndustryExists(ctx context.Context, id string) (bool, error)
}
