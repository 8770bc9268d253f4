package repository

import (
	"fmt"
	"strings"

	"github.com/ecap-org/ecap-directory/internal/projects/domain"
)

// searchColumns are matched case-insensitively against the search term, ORed together.
var searchColumns = []string{
	"p.name_en",
	"p.name_ar",
	"p.name_fr",
	"p.desc_en",
	"p.website",
	"c.name_en",
	"c.name_ar",
	"i.name_en",
	"i.name_ar",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring ILIKE with its wildcards escaped.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// buildWhere renders the WHERE clause for q (including the keyword, or "" when
// nothing filters) and its positional args starting at $1.
func buildWhere(q domain.Query) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.IndustryID != "" {
		conds = append(conds, "p.industry_id = "+next(q.IndustryID))
	}
	if q.CountryID != "" {
		conds = append(conds, "p.country_id = "+next(q.CountryID))
	}
	if term := strings.TrimSpace(q.Search); term != "" {
		ph := next(likePattern(term))
		ors := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			ors[i] = col + " ILIKE " + ph
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
