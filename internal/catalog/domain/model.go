package domain

import (
	"context"
	"regexp"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/locale"
)

// Country is a reference row a project points at.
type Country struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
	NameFr string `json:"nameFr"`
}

func (c Country) Name() locale.Text {
	return locale.Text{En: c.NameEn, Ar: c.NameAr, Fr: c.NameFr}
}

// Industry is a reference row with a badge color from Palette.
type Industry struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
	NameFr string `json:"nameFr"`
	Color  string `json:"color"`
}

func (i Industry) Name() locale.Text {
	return locale.Text{En: i.NameEn, Ar: i.NameAr, Fr: i.NameFr}
}

// CountryFields is the writable part of a Country.
type CountryFields struct {
	Slug   string `json:"slug"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
	NameFr string `json:"nameFr"`
}

// IndustryFields is the writable part of an Industry.
type IndustryFields struct {
	Slug   string `json:"slug"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
	NameFr string `json:"nameFr"`
	Color  string `json:"color"`
}

const DefaultColor = "gray"

// Palette lists the badge colors an industry may use.
var Palette = []string{
	"gray", "slate", "red", "orange", "amber", "yellow", "lime", "green", "emerald",
	"teal", "cyan", "sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

func ValidColor(c string) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidSlug reports whether s is lowercase alphanumerics separated by single hyphens.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

var (
	ErrCountryNotFound   = apperr.NotFound("country not found")
	ErrIndustryNotFound  = apperr.NotFound("industry not found")
	ErrCountrySlugTaken  = apperr.Conflict("a country with this slug already exists")
	ErrIndustrySlugTaken = apperr.Conflict("an industry with this slug already exists")
)

type CountryRepository interface {
	// List returns countries ordered by English name.
	List(ctx context.Context) ([]Country, error)
	Get(ctx context.Context, id string) (*Country, error)
	GetBySlug(ctx context.Context, slug string) (*Country, error)
	Create(ctx context.Context, f CountryFields) (*Country, error)
	Update(ctx context.Context, id string, f CountryFields) (*Country, error)
	// Delete removes an unreferenced country. A referenced one yields an
	// apperr.Referenced conflict carrying the project count.
	Delete(ctx context.Context, id string) error
	CountProjects(ctx context.Context, id string) (int, error)
}

type IndustryRepository interface {
	List(ctx context.Context) ([]Industry, error)
	Get(ctx context.Context, id string) (*Industry, error)
	GetBySlug(ctx context.Context, slug string) (*Industry, error)
	Create(ctx context.Context, f IndustryFields) (*Industry, error)
	Update(ctx context.Context, id string, f IndustryFields) (*Industry, error)
	Delete(ctx context.Context, id string) error
	CountProjects(ctx context.Context, id string) (int, error)
}

// ListCache holds the full country and industry lists between writes.
type ListCache interface {
	Countries(ctx context.Context) ([]Country, bool)
	SetCountries(ctx context.Context, list []Country)
	Industries(ctx context.Context) ([]Industry, bool)
	SetIndustries(ctx context.Context, list []Industry)
	InvalidateCountries(ctx context.Context)
	InvalidateIndustries(ctx context.Context)
}
