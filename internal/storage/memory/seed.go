package memory

import (
	"context"
	"fmt"

	admins "github.com/ecap-org/ecap-directory/internal/admins/domain"
	"github.com/ecap-org/ecap-directory/internal/auth"
	projects "github.com/ecap-org/ecap-directory/internal/projects/domain"
	"github.com/ecap-org/ecap-directory/internal/storage/seed"
)

// Seed loads the reference catalog, the bootstrap admin when the store has
// none (skipped if admin.Password is empty) and, with demo set, the demo projects.
// The admin email is stored in the same form login looks it up by.
func (s *Store) Seed(ctx context.Context, admin seed.Admin, demo bool) error {
	for _, f := range seed.Countries {
		if _, err := s.Countries().GetBySlug(ctx, f.Slug); err == nil {
			continue
		}
		if _, err := s.Countries().Create(ctx, f); err != nil {
			return fmt.Errorf("seed country %s: %w", f.Slug, err)
		}
	}
	for _, f := range seed.Industries {
		if _, err := s.Industries().GetBySlug(ctx, f.Slug); err == nil {
			continue
		}
		if _, err := s.Industries().Create(ctx, f); err != nil {
			return fmt.Errorf("seed industry %s: %w", f.Slug, err)
		}
	}

	if n, _ := s.Admins().Count(ctx); n == 0 && admin.Password != "" {
		hash, err := auth.HashPassword(admin.Password)
		if err != nil {
			return err
		}
		a := &admins.Admin{Email: admins.NormalizeEmail(admin.Email), Name: admin.Name, PasswordHash: hash}
		if err := s.Admins().Create(ctx, a); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	if !demo || s.projectCount() > 0 {
		return nil
	}
	for _, d := range seed.DemoProjects {
		country, err := s.Countries().GetBySlug(ctx, d.CountrySlug)
		if err != nil {
			return err
		}
		industry, err := s.Industries().GetBySlug(ctx, d.IndustrySlug)
		if err != nil {
			return err
		}
		p := &projects.Project{
			NameEn: d.NameEn, NameAr: d.NameAr, NameFr: d.NameFr,
			DescEn: d.DescEn, DescAr: d.DescAr, DescFr: d.DescFr,
			Website: d.Website, Email: d.Email, Phone: d.Phone,
			CountryID: country.ID, IndustryID: industry.ID,
		}
		if err := s.Projects().Create(ctx, p); err != nil {
			return fmt.Errorf("seed project %s: %w", d.NameEn, err)
		}
	}
	return nil
}

func (s *Store) projectCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}
