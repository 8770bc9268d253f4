package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecap-org/ecap-directory/internal/apperr"
	"github.com/ecap-org/ecap-directory/internal/catalog/domain"
	"github.com/ecap-org/ecap-directory/internal/storage/postgres"
)

type IndustryRepository struct {
	db *pgxpool.Pool
}

func NewIndustryRepository(db *pgxpool.Pool) *IndustryRepository {
	return &IndustryRepository{db: db}
}

const industryColumns = `id::text, slug, name_en, name_ar, name_fr, color`

func scanIndustry(row pgx.Row) (*domain.Industry, error) {
	var i domain.Industry
	if err := row.Scan(&i.ID, &i.Slug, &i.NameEn, &i.NameAr, &i.NameFr, &i.Color); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIndustryNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *IndustryRepository) List(ctx context.Context) ([]domain.Industry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+industryColumns+` FROM industries ORDER BY name_en ASC`)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	out := []domain.Industry{}
	for rows.Next() {
		i, err := scanIndustry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *i)
	}
	return out, rows.Err()
}

func (r *IndustryRepository) Get(ctx context.Context, id string) (*domain.Industry, error) {
	if !postgres.ValidID(id) {
		return nil, domain.ErrIndustryNotFound
	}
	return scanIndustry(r.db.QueryRow(ctx, `SELECT `+industryColumns+` FROM industries WHERE id = $1`, id))
}

func (r *IndustryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Industry, error) {
	return scanIndustry(r.db.QueryRow(ctx, `SELECT `+industryColumns+` FROM industries WHERE slug = $1`, slug))
}

func (r *IndustryRepository) Create(ctx context.Context, f domain.IndustryFields) (*domain.Industry, error) {
	const q = `
INSERT INTO industries (slug, name_en, name_ar, name_fr, color)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + industryColumns

	i, err := scanIndustry(r.db.QueryRow(ctx, q, f.Slug, f.NameEn, f.NameAr, f.NameFr, f.Color))
	if postgres.IsUniqueViolation(err) {
		return nil, domain.ErrIndustrySlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert industry: %w", err)
	}
	return i, nil
}

func (r *IndustryRepository) Update(ctx context.Context, id string, f domain.IndustryFields) (*domain.Industry, error) {
	if !postgres.ValidID(id) {
		return nil, domain.ErrIndustryNotFound
	}

	const q = `
UPDATE industries
SET slug = $2, name_en = $3, name_ar = $4, name_fr = $5, color = $6
WHERE id = $1
RETURNING ` + industryColumns

	i, err := scanIndustry(r.db.QueryRow(ctx, q, id, f.Slug, f.NameEn, f.NameAr, f.NameFr, f.Color))
	if postgres.IsUniqueViolation(err) {
		return nil, domain.ErrIndustrySlugTaken
	}
	if err != nil && !errors.Is(err, domain.ErrIndustryNotFound) {
		return nil, fmt.Errorf("update industry: %w", err)
	}
	return i, err
}

// Delete is backstopped by the projects.industry_id RESTRICT constraint.
func (r *IndustryRepository) Delete(ctx context.Context, id string) error {
	if !postgres.ValidID(id) {
		return domain.ErrIndustryNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM industries WHERE id = $1`, id)
	if postgres.IsForeignKeyViolation(err) {
		n, cerr := r.CountProjects(ctx, id)
		if cerr != nil {
			return cerr
		}
		return apperr.Referenced(n, "industry")
	}
	if err != nil {
		return fmt.Errorf("delete industry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIndustryNotFound
	}
	return nil
}

func (r *IndustryRepository) CountProjects(ctx context.Context, id string) (int, error) {
	if !postgres.ValidID(id) {
		return 0, nil
	}
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM projects WHERE industry_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count industry projects: %w", err)
	}
	return n, nil
}
