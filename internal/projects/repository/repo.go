package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecap-org/ecap-directory/internal/projects/domain"
	"github.com/ecap-org/ecap-directory/internal/storage/postgres"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const selectProject = `
SELECT p.id::text, p.name_en, p.name_ar, p.name_fr, p.desc_en, p.desc_ar, p.desc_fr,
       p.website, p.email, p.phone, p.logo_en, p.logo_ar, p.logo_fr,
       p.created_at, p.updated_at,
       c.id::text, c.slug, c.name_en, c.name_ar, c.name_fr,
       i.id::text, i.slug, i.name_en, i.name_ar, i.name_fr, i.color
FROM projects p
JOIN countries c ON c.id = p.country_id
JOIN industries i ON i.id = p.industry_id
`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.NameEn, &p.NameAr, &p.NameFr, &p.DescEn, &p.DescAr, &p.DescFr,
		&p.Website, &p.Email, &p.Phone, &p.LogoEn, &p.LogoAr, &p.LogoFr,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Country.ID, &p.Country.Slug, &p.Country.NameEn, &p.Country.NameAr, &p.Country.NameFr,
		&p.Industry.ID, &p.Industry.Slug, &p.Industry.NameEn, &p.Industry.NameAr, &p.Industry.NameFr, &p.Industry.Color,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.CountryID = p.Country.ID
	p.IndustryID = p.Industry.ID
	return &p, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	if !postgres.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	return scanProject(r.db.QueryRow(ctx, selectProject+`WHERE p.id = $1`, id))
}

// Query runs the filtered count and page select. seq breaks createdAt ties so
// pages stay stable.
func (r *ProjectRepository) Query(ctx context.Context, q domain.Query) ([]domain.Project, int, error) {
	if (q.IndustryID != "" && !postgres.ValidID(q.IndustryID)) ||
		(q.CountryID != "" && !postgres.ValidID(q.CountryID)) {
		return []domain.Project{}, 0, nil
	}
	where, args := buildWhere(q)

	var total int
	countSQL := `SELECT count(*) FROM projects p
JOIN countries c ON c.id = p.country_id
JOIN industries i ON i.id = p.industry_id ` + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}
	if total == 0 || q.Offset() >= total {
		return []domain.Project{}, total, nil
	}

	pageSQL := fmt.Sprintf("%s%s ORDER BY p.created_at DESC, p.seq DESC LIMIT $%d OFFSET $%d",
		selectProject, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, pageSQL, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, q.Limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (name_en, name_ar, name_fr, desc_en, desc_ar, desc_fr,
                      website, email, phone, country_id, industry_id, logo_en, logo_ar, logo_fr)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id::text
`
	if !postgres.ValidID(p.CountryID) || !postgres.ValidID(p.IndustryID) {
		return domain.ErrUnknownReference
	}

	var id string
	err := r.db.QueryRow(ctx, q,
		p.NameEn, p.NameAr, p.NameFr, p.DescEn, p.DescAr, p.DescFr,
		p.Website, p.Email, p.Phone, p.CountryID, p.IndustryID, p.LogoEn, p.LogoAr, p.LogoFr,
	).Scan(&id)
	if postgres.IsForeignKeyViolation(err) {
		return domain.ErrUnknownReference
	}
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	saved, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*p = *saved
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	const q = `
UPDATE projects
SET name_en = $2, name_ar = $3, name_fr = $4, desc_en = $5, desc_ar = $6, desc_fr = $7,
    website = $8, email = $9, phone = $10, country_id = $11, industry_id = $12,
    logo_en = $13, logo_ar = $14, logo_fr = $15, updated_at = now()
WHERE id = $1
`
	if !postgres.ValidID(p.ID) {
		return domain.ErrNotFound
	}
	if !postgres.ValidID(p.CountryID) || !postgres.ValidID(p.IndustryID) {
		return domain.ErrUnknownReference
	}

	tag, err := r.db.Exec(ctx, q, p.ID,
		p.NameEn, p.NameAr, p.NameFr, p.DescEn, p.DescAr, p.DescFr,
		p.Website, p.Email, p.Phone, p.CountryID, p.IndustryID, p.LogoEn, p.LogoAr, p.LogoFr,
	)
	if postgres.IsForeignKeyViolation(err) {
		return domain.ErrUnknownReference
	}
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	saved, err := r.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *saved
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if !postgres.ValidID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) LogoURLs(ctx context.Context) ([]string, error) {
	const q = `
SELECT logo FROM (
  SELECT logo_en AS logo FROM projects
  UNION SELECT logo_ar FROM projects
  UNION SELECT logo_fr FROM projects
) l WHERE logo <> ''
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list logos: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountryExists and IndustryExists satisfy domain.References.
func (r *ProjectRepository) CountryExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM countries WHERE id = $1)`, id)
}

func (r *ProjectRepository) IndustryExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM industries WHERE id = $1)`, id)
}

func (r *ProjectRepository) exists(ctx context.Context, q, id string) (bool, error) {
	if !postgres.ValidID(id) {
		return false, nil
	}
	var ok bool
	err := r.db.QueryRow(ctx, q, id).Scan(&ok)
	return ok, err
}
