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

type CountryRepository struct {
	db *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{db: db}
}

const countryColumns = `id::text, slug, name_en, name_ar, name_fr`

func scanCountry(row pgx.Row) (*domain.Country, error) {
	var c domain.Country
	if err := row.Scan(&c.ID, &c.Slug, &c.NameEn, &c.NameAr, &c.NameFr); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT `+countryColumns+` FROM countries ORDER BY name_en ASC`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	out := []domain.Country{}
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CountryRepository) Get(ctx context.Context, id string) (*domain.Country, error) {
	if !postgres.ValidID(id) {
		return nil, domain.ErrCountryNotFound
	}
	return scanCountry(r.db.QueryRow(ctx, `SELECT `+countryColumns+` FROM countries WHERE id = $1`, id))
}

func (r *CountryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Country, error) {
	return scanCountry(r.db.QueryRow(ctx, `SELECT `+countryColumns+` FROM countries WHERE slug = $1`, slug))
}

func (r *CountryRepository) Create(ctx context.Context, f domain.CountryFields) (*domain.Country, error) {
	const q = `
INSERT INTO countries (slug, name_en, name_ar, name_fr)
VALUES ($1, $2, $3, $4)
RETURNING ` + countryColumns

	c, err := scanCountry(r.db.QueryRow(ctx, q, f.Slug, f.NameEn, f.NameAr, f.NameFr))
	if postgres.IsUniqueViolation(err) {
		return nil, domain.ErrCountrySlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert country: %w", err)
	}
	return c, nil
}

func (r *CountryRepository) Update(ctx context.Context, id string, f domain.CountryFields) (*domain.Country, error) {
	if !postgres.ValidID(id) {
		return nil, domain.ErrCountryNotFound
	}

	const q = `
UPDATE countries
SET slug = $2, name_en = $3, name_ar = $4, name_fr = $5
WHERE id = $1
RETURNING ` + countryColumns

	c, err := scanCountry(r.db.QueryRow(ctx, q, id, f.Slug, f.NameEn, f.NameAr, f.NameFr))
	if postgres.IsUniqueViolation(err) {
		return nil, domain.ErrCountrySlugTaken
	}
	if err != nil && !errors.Is(err, domain.ErrCountryNotFound) {
		return nil, fmt.Errorf("update country: %w", err)
	}
	return c, err
}

// Delete relies on the projects.country_id RESTRICT constraint to refuse
// deleting a referenced country, even when a project is inserted after the
// service counted references.
func (r *CountryRepository) Delete(ctx context.Context, id string) error {
	if !postgres.ValidID(id) {
		return domain.ErrCountryNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if postgres.IsForeignKeyViolation(err) {
		n, cerr := r.CountProjects(ctx, id)
		if cerr != nil {
			return cerr
		}
		return apperr.Referenced(n, "country")
	}
	if err != nil {
		return fmt.Errorf("delete country: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

func (r *CountryRepository) CountProjects(ctx context.Context, id string) (int, error) {
	if !postgres.ValidID(id) {
		return 0, nil
	}
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM projects WHERE country_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count country projects: %w", err)
	}
	return n, nil
}
