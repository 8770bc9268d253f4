package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
)

type CountryRepository struct {
	s *Store
}

func (r *CountryRepository) List(_ context.Context) ([]domain.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Country, 0, len(r.s.countries))
	for _, c := range r.s.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameEn < out[j].NameEn })
	return out, nil
}

func (r *CountryRepository) Get(_ context.Context, id string) (*domain.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.countries[id]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	return &c, nil
}

func (r *CountryRepository) GetBySlug(_ context.Context, slug string) (*domain.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.countries {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, domain.ErrCountryNotFound
}

func (r *CountryRepository) Create(_ context.Context, f domain.CountryFields) (*domain.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.slugTaken(f.Slug, "") {
		return nil, domain.ErrCountrySlugTaken
	}
	c := domain.Country{ID: uuid.NewString(), Slug: f.Slug, NameEn: f.NameEn, NameAr: f.NameAr, NameFr: f.NameFr}
	r.s.countries[c.ID] = c
	return &c, nil
}

func (r *CountryRepository) Update(_ context.Context, id string, f domain.CountryFields) (*domain.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.countries[id]; !ok {
		return nil, domain.ErrCountryNotFound
	}
	if r.slugTaken(f.Slug, id) {
		return nil, domain.ErrCountrySlugTaken
	}
	c := domain.Country{ID: id, Slug: f.Slug, NameEn: f.NameEn, NameAr: f.NameAr, NameFr: f.NameFr}
	r.s.countries[id] = c
	return &c, nil
}

func (r *CountryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.countries[id]; !ok {
		return domain.ErrCountryNotFound
	}
	if n := r.s.countProjects(func(p *projectRow) bool { return p.countryID == id }); n > 0 {
		return apperr.Referenced(n, "country")
	}
	delete(r.s.countries, id)
	return nil
}

func (r *CountryRepository) CountProjects(_ context.Context, id string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.countProjects(func(p *projectRow) bool { return p.countryID == id }), nil
}

func (r *CountryRepository) slugTaken(slug, exceptID string) bool {
	for _, c := range r.s.countries {
		if c.Slug == slug && c.ID != exceptID {
			return true
		}
	}
	return false
}

type IndustryRepository struct {
	s *Store
}

func (r *IndustryRepository) List(_ context.Context) ([]domain.Industry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Industry, 0, len(r.s.industries))
	for _, i := range r.s.industries {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameEn < out[j].NameEn })
	return out, nil
}

func (r *IndustryRepository) Get(_ context.Context, id string) (*domain.Industry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.industries[id]
	if !ok {
		return nil, domain.ErrIndustryNotFound
	}
	return &i, nil
}

func (r *IndustryRepository) GetBySlug(_ context.Context, slug string) (*domain.Industry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, i := range r.s.industries {
		if i.Slug == slug {
			return &i, nil
		}
	}
	return nil, domain.ErrIndustryNotFound
}

func (r *IndustryRepository) Create(_ context.Context, f domain.IndustryFields) (*domain.Industry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.slugTaken(f.Slug, "") {
		return nil, domain.ErrIndustrySlugTaken
	}
	i := domain.Industry{ID: uuid.NewString(), Slug: f.Slug, NameEn: f.NameEn, NameAr: f.NameAr, NameFr: f.NameFr, Color: f.Color}
	r.s.industries[i.ID] = i
	return &i, nil
}

func (r *IndustryRepository) Update(_ context.Context, id string, f domain.IndustryFields) (*domain.Industry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.industries[id]; !ok {
		return nil, domain.ErrIndustryNotFound
	}
	if r.slugTaken(f.Slug, id) {
		return nil, domain.ErrIndustrySlugTaken
	}
	i := domain.Industry{ID: id, Slug: f.Slug, NameEn: f.NameEn, NameAr: f.NameAr, NameFr: f.NameFr, Color: f.Color}
	r.s.industries[id] = i
	return &i, nil
}

func (r *IndustryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.industries[id]; !ok {
		return domain.ErrIndustryNotFound
	}
	if n := r.s.countProjects(func(p *projectRow) bool { return p.industryID == id }); n > 0 {
		return apperr.Referenced(n, "industry")
	}
	delete(r.s.industries, id)
	return nil
}

func (r *IndustryRepository) CountProjects(_ context.Context, id string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.countProjects(func(p *projectRow) bool { return p.industryID == id }), nil
}

func (r *IndustryRepository) slugTaken(slug, exceptID string) bool {
	for _, i := range r.s.industries {
		if i.Slug == slug && i.ID != exceptID {
			return true
		}
	}
	return false
}

// countProjects must be called with mu held.
func (s *Store) countProjects(match func(*projectRow) bool) int {
	n := 0
	for _, p := range s.projects {
		if match(p) {
			n++
		}
	}
	return n
}
