package service

import (
	"context"
	"strings"

	"github.com/ecap-org/ecap-directory/internal/logging"
	"github.com/ecap-org/ecap-directory/internal/projects/domain"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo domain.Repository
	refs domain.References
}

// NewProjectService creates a new project service
func NewProjectService(repo domain.Repository, refs domain.References) *ProjectService {
	return &ProjectService{
		repo: repo,
		refs: refs,
	}
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Query returns one page of projects. defaultLimit applies when q.Limit is unset.
func (s *ProjectService) Query(ctx context.Context, q domain.Query, defaultLimit int) (domain.Page, error) {
	q = q.Normalize(defaultLimit)
	q.Search = strings.TrimSpace(q.Search)

	items, total, err := s.repo.Query(ctx, q)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.NewPage(items, total, q), nil
}

// Create stores a new project. English name and description plus both
// references are mandatory.
func (s *ProjectService) Create(ctx context.Context, f domain.Fields) (*domain.Project, error) {
	var p domain.Project
	f.Apply(&p)
	trimProject(&p)

	if err := s.validate(ctx, &p); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	logging.New(ctx).Infof("projects.create", "id=%s country=%s industry=%s", p.ID, p.CountryID, p.IndustryID)
	return &p, nil
}

// Update merges the supplied fields onto the stored project.
func (s *ProjectService) Update(ctx context.Context, id string, f domain.Fields) (*domain.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	f.Apply(p)
	trimProject(p)

	if err := s.validate(ctx, p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	logging.New(ctx).Infof("projects.update", "id=%s", p.ID)
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.New(ctx).Infof("projects.delete", "id=%s", id)
	return nil
}

// LogoURLs lists the logo references still in use.
func (s *ProjectService) LogoURLs(ctx context.Context) ([]string, error) {
	return s.repo.LogoURLs(ctx)
}

func (s *ProjectService) validate(ctx context.Context, p *domain.Project) error {
	if p.NameEn == "" || p.DescEn == "" {
		return domain.ErrEnglishRequired
	}
	if p.CountryID == "" || p.IndustryID == "" {
		return domain.ErrReferenceRequired
	}

	ok, err := s.refs.CountryExists(ctx, p.CountryID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownReference
	}
	ok, err = s.refs.IndustryExists(ctx, p.IndustryID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownReference
	}
	return nil
}

func trimProject(p *domain.Project) {
	for _, v := range []*string{
		&p.NameEn, &p.NameAr, &p.NameFr, &p.DescEn, &p.DescAr, &p.DescFr,
		&p.Website, &p.Email, &p.Phone, &p.CountryID, &p.IndustryID,
		&p.LogoEn, &p.LogoAr, &p.LogoFr,
	} {
		*v = strings.TrimSpace(*v)
	}
}
