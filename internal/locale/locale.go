// Package locale models the three display languages of the directory.
package locale

import "strings"

type Locale int

const (
	EN Locale = iota
	AR
	FR
)

// Parse maps "en", "ar" and "fr" (any case) to a Locale. Anything else is EN.
func Parse(s string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return EN, true
	case "ar":
		return AR, true
	case "fr":
		return FR, true
	default:
		return EN, false
	}
}

func (l Locale) String() string {
	switch l {
	case AR:
		return "ar"
	case FR:
		return "fr"
	default:
		return "en"
	}
}

// RTL reports whether the locale is written right to left.
func (l Locale) RTL() bool {
	return l == AR
}

// Text is one user-facing attribute carried in all three variants.
type Text struct {
	En string
	Ar string
	Fr string
}

// In returns the variant for l, falling back to English when it is empty.
func (t Text) In(l Locale) string {
	switch l {
	case AR:
		if t.Ar != "" {
			return t.Ar
		}
	case FR:
		if t.Fr != "" {
			return t.Fr
		}
	}
	return t.En
}

// Asset picks a per-locale asset: the locale's own value, then English,
// then whichever other variant is set.
func (t Text) Asset(l Locale) string {
	if v := t.In(l); v != "" {
		return v
	}
	if t.Ar != "" {
		return t.Ar
	}
	return t.Fr
}
