package domain

import "github.com/ecap-org/ecap-directory/internal/locale"

// Display is a project rendered for one locale, with the usual fallbacks applied.
type Display struct {
	Locale       string `json:"locale"`
	Dir          string `json:"dir"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Logo         string `json:"logo"`
	CountryName  string `json:"countryName"`
	IndustryName string `json:"industryName"`
}

// Localized is a Project with an optional Display attached.
type Localized struct {
	Project
	Display *Display `json:"display,omitempty"`
}

func (p Project) DisplayIn(l locale.Locale) Display {
	dir := "ltr"
	if l.RTL() {
		dir = "rtl"
	}
	return Display{
		Locale:       l.String(),
		Dir:          dir,
		Name:         p.Name().In(l),
		Description:  p.Description().In(l),
		Logo:         p.Logo().Asset(l),
		CountryName:  p.Country.Name().In(l),
		IndustryName: p.Industry.Name().In(l),
	}
}

// Localize attaches a Display for l to every item.
func Localize(items []Project, l locale.Locale) []Localized {
	out := make([]Localized, len(items))
	for i, p := range items {
		d := p.DisplayIn(l)
		out[i] = Localized{Project: p, Display: &d}
	}
	return out
}
