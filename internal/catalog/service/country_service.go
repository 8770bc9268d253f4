package service

import (
	"context"
	"errors"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/catalog/cache"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
	"github.com/ecap-org/ecap-directory/internal/logging"
)

type CountryService struct {
	repo  domain.CountryRepository
	cache domain.ListCache
}

// NewCountryService wires the store and an optional list cache (nil disables caching).
func NewCountryService(repo domain.CountryRepository, c domain.ListCache) *CountryService {
	if c == nil {
		c = cache.Noop{}
	}
	return &CountryService{repo: repo, cache: c}
}

func (s *CountryService) List(ctx context.Context) ([]domain.Country, error) {
	if list, ok := s.cache.Countries(ctx); ok {
		return list, nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetCountries(ctx, list)
	return list, nil
}

func (s *CountryService) Get(ctx context.Context, id string) (*domain.Country, error) {
	return s.repo.Get(ctx, id)
}

func (s *CountryService) Create(ctx context.Context, f domain.CountryFields) (*domain.Country, error) {
	f, err := normalizeCountry(f)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.GetBySlug(ctx, f.Slug)
	if err == nil {
		return nil, domain.ErrCountrySlugTaken
	}
	if !errors.Is(err, domain.ErrCountryNotFound) {
		return nil, err
	}

	c, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateCountries(ctx)

	logging.New(ctx).Infof("countries.create", "id=%s slug=%s", c.ID, c.Slug)
	return c, nil
}

// Update replaces every writable field. Slug uniqueness is left to the store.
func (s *CountryService) Update(ctx context.Context, id string, f domain.CountryFields) (*domain.Country, error) {
	f, err := normalizeCountry(f)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.Update(ctx, id, f)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateCountries(ctx)

	logging.New(ctx).Infof("countries.update", "id=%s slug=%s", c.ID, c.Slug)
	return c, nil
}

// Delete refuses while any project references the country.
func (s *CountryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.CountProjects(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Referenced(n, "country")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateCountries(ctx)

	logging.New(ctx).Infof("countries.delete", "id=%s", id)
	return nil
}
