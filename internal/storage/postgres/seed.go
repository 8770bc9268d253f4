package postgres

import (
	"context"
	"database/sql"
	"fmt"

	admins "github.com/ecap-org/ecap-directory/internal/admins/domain"
	"github.com/ecap-org/ecap-directory/internal/auth"
	"github.com/ecap-org/ecap-directory/internal/storage/seed"
)

const (
	upsertCountry = `INSERT INTO countries (slug, name_en, name_ar, name_fr)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET name_en = EXCLUDED.name_en, name_ar = EXCLUDED.name_ar, name_fr = EXCLUDED.name_fr`

	upsertIndustry = `INSERT INTO industries (slug, name_en, name_ar, name_fr, color)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (slug) DO UPDATE
SET name_en = EXCLUDED.name_en, name_ar = EXCLUDED.name_ar, name_fr = EXCLUDED.name_fr, color = EXCLUDED.color`

	countAdmins = `SELECT count(*) FROM admins`

	insertAdmin = `INSERT INTO admins (email, password_hash, name) VALUES ($1, $2, $3)`

	countProjects = `SELECT count(*) FROM projects`

	insertDemoProject = `INSERT INTO projects (name_en, name_ar, name_fr, desc_en, desc_ar, desc_fr,
                      website, email, phone, country_id, industry_id)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, c.id, i.id
FROM countries c, industries i
WHERE c.slug = $10 AND i.slug = $11`
)

// SeedResult counts what Seed wrote.
type SeedResult struct {
	Countries    int
	Industries   int
	AdminCreated bool
	Projects     int
}

// Seed upserts the reference catalog by slug, creates admin when the admins
// table is empty, and with demo set inserts the demo projects into an empty
// projects table. Everything runs in one transaction.
func Seed(ctx context.Context, db *sql.DB, admin seed.Admin, demo bool) (*SeedResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	res := &SeedResult{}
	for _, c := range seed.Countries {
		if _, err := tx.ExecContext(ctx, upsertCountry, c.Slug, c.NameEn, c.NameAr, c.NameFr); err != nil {
			return nil, fmt.Errorf("seed country %s: %w", c.Slug, err)
		}
		res.Countries++
	}
	for _, i := range seed.Industries {
		if _, err := tx.ExecContext(ctx, upsertIndustry, i.Slug, i.NameEn, i.NameAr, i.NameFr, i.Color); err != nil {
			return nil, fmt.Errorf("seed industry %s: %w", i.Slug, err)
		}
		res.Industries++
	}

	var n int
	if err := tx.QueryRowContext(ctx, countAdmins).Scan(&n); err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	if n == 0 {
		if admin.Password == "" {
			return nil, fmt.Errorf("no admin exists and SEED_ADMIN_PASSWORD is empty")
		}
		hash, err := auth.HashPassword(admin.Password)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, insertAdmin, admins.NormalizeEmail(admin.Email), hash, admin.Name); err != nil {
			return nil, fmt.Errorf("seed admin: %w", err)
		}
		res.AdminCreated = true
	}

	if demo {
		if err := tx.QueryRowContext(ctx, countProjects).Scan(&n); err != nil {
			return nil, fmt.Errorf("count projects: %w", err)
		}
		if n == 0 {
			for _, p := range seed.DemoProjects {
				if _, err := tx.ExecContext(ctx, insertDemoProject,
					p.NameEn, p.NameAr, p.NameFr, p.DescEn, p.DescAr, p.DescFr,
					p.Website, p.Email, p.Phone, p.CountrySlug, p.IndustrySlug,
				); err != nil {
					return nil, fmt.Errorf("seed project %s: %w", p.NameEn, err)
				}
				res.Projects++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}
