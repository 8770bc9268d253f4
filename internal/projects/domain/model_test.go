package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalog "github.com/ecap-org/ecap-directory/internal/catalog/domain"
	"github.com/ecap-org/ecap-directory/internal/locale"
)

func TestQuery_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Query
		def  int
		want Query
	}{
		{"defaults", Query{}, PublicPageSize, Query{Page: 1, Limit: 6}},
		{"admin default", Query{Page: 3}, AdminPageSize, Query{Page: 3, Limit: 10}},
		{"negative page", Query{Page: -2, Limit: 4}, PublicPageSize, Query{Page: 1, Limit: 4}},
		{"limit capped", Query{Page: 1, Limit: 5000}, PublicPageSize, Query{Page: 1, Limit: MaxPageSize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize(tt.def))
		})
	}

	assert.Equal(t, 6, Query{Page: 2, Limit: 6}.Offset())
}

func TestNewPage(t *testing.T) {
	p := NewPage(nil, 14, Query{Page: 2, Limit: 6})
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 14, p.Total)
	assert.NotNil(t, p.Items)

	p = NewPage(nil, 0, Query{Page: 1, Limit: 6})
	assert.Equal(t, 0, p.TotalPages)

	p = NewPage(nil, 12, Query{Page: 1, Limit: 6})
	assert.Equal(t, 2, p.TotalPages)
}

func TestFields_Apply(t *testing.T) {
	name := "New"
	empty := ""
	p := Project{NameEn: "Old", DescEn: "Desc", Website: "https://x.example"}

	Fields{NameEn: &name, Website: &empty}.Apply(&p)

	assert.Equal(t, "New", p.NameEn)
	assert.Equal(t, "Desc", p.DescEn)
	assert.Empty(t, p.Website)
}

func TestDisplayIn(t *testing.T) {
	p := Project{
		NameEn: "Falcon", NameAr: "فالكون",
		DescEn: "Drones",
		LogoAr: "/uploads/ar.png",
		Country:  catalog.Country{NameEn: "UAE", NameAr: "الإمارات"},
		Industry: catalog.Industry{NameEn: "Tech", NameFr: "Technologie"},
	}

	ar := p.DisplayIn(locale.AR)
	assert.Equal(t, Display{
		Locale: "ar", Dir: "rtl",
		Name: "فالكون", Description: "Drones", Logo: "/uploads/ar.png",
		CountryName: "الإمارات", IndustryName: "Tech",
	}, ar)

	fr := p.DisplayIn(locale.FR)
	assert.Equal(t, "ltr", fr.Dir)
	assert.Equal(t, "Falcon", fr.Name)
	assert.Equal(t, "/uploads/ar.png", fr.Logo)
	assert.Equal(t, "UAE", fr.CountryName)
	assert.Equal(t, "Technologie", fr.IndustryName)

	items := Localize([]Project{p}, locale.EN)
	if assert.Len(t, items, 1) && assert.NotNil(t, items[0].Display) {
		assert.Equal(t, "en", items[0].Display.Locale)
	}
}
