package service

import (
	"context"
	"errors"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/catalog/cache"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
	"github.com/ecap-org/ecap-directory/internal/logging"
)

type IndustryService struct {
	repo  domain.IndustryRepository
	cache domain.ListCache
}

func NewIndustryService(repo domain.IndustryRepository, c domain.ListCache) *IndustryService {
	if c == nil {
		c = cache.Noop{}
	}
	return &IndustryService{repo: repo, cache: c}
}

func (s *IndustryService) List(ctx context.Context) ([]domain.Industry, error) {
	if list, ok := s.cache.Industries(ctx); ok {
		return list, nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetIndustries(ctx, list)
	return list, nil
}

func (s *IndustryService) Get(ctx context.Context, id string) (*domain.Industry, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new industry. An empty color becomes DefaultColor.
func (s *IndustryService) Create(ctx context.Context, f domain.IndustryFields) (*domain.Industry, error) {
	f, err := normalizeIndustry(f)
	if err != nil {
		return nil, err
	}

	_, err = s.repo.GetBySlug(ctx, f.Slug)
	if err == nil {
		return nil, domain.ErrIndustrySlugTaken
	}
	if !errors.Is(err, domain.ErrIndustryNotFound) {
		return nil, err
	}

	i, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateIndustries(ctx)

	logging.New(ctx).Infof("industries.create", "id=%s slug=%s", i.ID, i.Slug)
	return i, nil
}

func (s *IndustryService) Update(ctx context.Context, id string, f domain.IndustryFields) (*domain.Industry, error) {
	f, err := normalizeIndustry(f)
	if err != nil {
		return nil, err
	}

	i, err := s.repo.Update(ctx, id, f)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateIndustries(ctx)

	logging.New(ctx).Infof("industries.update", "id=%s slug=%s", i.ID, i.Slug)
	return i, nil
}

func (s *IndustryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.CountProjects(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Referenced(n, "industry")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateIndustries(ctx)

	logging.New(ctx).Infof("industries.delete", "id=%s", id)
	return nil
}
