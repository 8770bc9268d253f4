package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ecap-org/ecap-directory/internal/projects/domain"
)

type ProjectRepository struct {
	s *Store
}

// project joins row with its catalog rows. Must be called with mu held.
func (s *Store) project(row *projectRow) domain.Project {
	return domain.Project{
		ID:         row.id,
		NameEn:     row.nameEn,
		NameAr:     row.nameAr,
		NameFr:     row.nameFr,
		DescEn:     row.descEn,
		DescAr:     row.descAr,
		DescFr:     row.descFr,
		Website:    row.website,
		Email:      row.email,
		Phone:      row.phone,
		CountryID:  row.countryID,
		IndustryID: row.industryID,
		Country:    s.countries[row.countryID],
		Industry:   s.industries[row.industryID],
		LogoEn:     row.logoEn,
		LogoAr:     row.logoAr,
		LogoFr:     row.logoFr,
		CreatedAt:  row.createdAt,
		UpdatedAt:  row.updatedAt,
	}
}

func (r *ProjectRepository) Get(_ context.Context, id string) (*domain.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.s.project(row)
	return &p, nil
}

// matches mirrors the Postgres filter: equality on the references and a
// case-insensitive substring search across names, descriptions and website.
func matches(p domain.Project, q domain.Query, term string) bool {
	if q.IndustryID != "" && p.IndustryID != q.IndustryID {
		return false
	}
	if q.CountryID != "" && p.CountryID != q.CountryID {
		return false
	}
	if term == "" {
		return true
	}
	for _, f := range []string{
		p.NameEn, p.NameAr, p.NameFr, p.DescEn, p.Website,
		p.Country.NameEn, p.Country.NameAr, p.Industry.NameEn, p.Industry.NameAr,
	} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func (r *ProjectRepository) Query(_ context.Context, q domain.Query) ([]domain.Project, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(q.Search))
	var (
		hits []domain.Project
		seqs = map[string]int64{}
	)
	for _, row := range r.s.projects {
		p := r.s.project(row)
		if matches(p, q, term) {
			hits = append(hits, p)
			seqs[p.ID] = row.seq
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if !hits[i].CreatedAt.Equal(hits[j].CreatedAt) {
			return hits[i].CreatedAt.After(hits[j].CreatedAt)
		}
		return seqs[hits[i].ID] > seqs[hits[j].ID]
	})

	total := len(hits)
	start := q.Offset()
	if start >= total {
		return []domain.Project{}, total, nil
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return hits[start:end], total, nil
}

func (r *ProjectRepository) Create(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.refsExist(p.CountryID, p.IndustryID) {
		return domain.ErrUnknownReference
	}

	r.s.seq++
	now := r.s.now().UTC()
	row := &projectRow{seq: r.s.seq, id: uuid.NewString(), createdAt: now, updatedAt: now}
	fill(row, p)
	r.s.projects[row.id] = row

	*p = r.s.project(row)
	return nil
}

func (r *ProjectRepository) Update(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.projects[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if !r.s.refsExist(p.CountryID, p.IndustryID) {
		return domain.ErrUnknownReference
	}

	fill(row, p)
	row.updatedAt = r.s.now().UTC()
	*p = r.s.project(row)
	return nil
}

func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.projects, id)
	return nil
}

func (r *ProjectRepository) LogoURLs(_ context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := map[string]bool{}
	var out []string
	for _, row := range r.s.projects {
		for _, u := range []string{row.logoEn, row.logoAr, row.logoFr} {
			if u != "" && !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *ProjectRepository) CountryExists(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.countries[id]
	return ok, nil
}

func (r *ProjectRepository) IndustryExists(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.industries[id]
	return ok, nil
}

// refsExist must be called with mu held.
func (s *Store) refsExist(countryID, industryID string) bool {
	_, okC := s.countries[countryID]
	_, okI := s.industries[industryID]
	return okC && okI
}

func fill(row *projectRow, p *domain.Project) {
	row.nameEn, row.nameAr, row.nameFr = p.NameEn, p.NameAr, p.NameFr
	row.descEn, row.descAr, row.descFr = p.DescEn, p.DescAr, p.DescFr
	row.website, row.email, row.phone = p.Website, p.Email, p.Phone
	row.countryID, row.industryID = p.CountryID, p.IndustryID
	row.logoEn, row.logoAr, row.logoFr = p.LogoEn, p.LogoAr, p.LogoFr
}
