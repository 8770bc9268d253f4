package service

import (
	"strings"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
)

var (
	errNameSlugRequired = apperr.Validation("nameEn and slug are required")
	errInvalidSlug      = apperr.Validation("slug must contain only lowercase letters, digits and single hyphens")
	errInvalidColor     = apperr.Validation("color must be one of: %s", strings.Join(domain.Palette, ", "))
)

func normalizeCountry(f domain.CountryFields) (domain.CountryFields, error) {
	f.Slug = strings.TrimSpace(f.Slug)
	f.NameEn = strings.TrimSpace(f.NameEn)
	f.NameAr = strings.TrimSpace(f.NameAr)
	f.NameFr = strings.TrimSpace(f.NameFr)

	if f.NameEn == "" || f.Slug == "" {
		return f, errNameSlugRequired
	}
	if !domain.ValidSlug(f.Slug) {
		return f, errInvalidSlug
	}
	return f, nil
}

func normalizeIndustry(f domain.IndustryFields) (domain.IndustryFields, error) {
	cf, err := normalizeCountry(domain.CountryFields{Slug: f.Slug, NameEn: f.NameEn, NameAr: f.NameAr, NameFr: f.NameFr})
	if err != nil {
		return f, err
	}
	f.Slug, f.NameEn, f.NameAr, f.NameFr = cf.Slug, cf.NameEn, cf.NameAr, cf.NameFr

	f.Color = strings.ToLower(strings.TrimSpace(f.Color))
	if f.Color == "" {
		f.Color = domain.DefaultColor
	}
	if !domain.ValidColor(f.Color) {
		return f, errInvalidColor
	}
	return f, nil
}
