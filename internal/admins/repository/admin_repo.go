package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecap-org/ecap-directory/internal/admins/domain"
	"github.com/ecap-org/ecap-directory/internal/storage/postgres"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id::text, email, password_hash, name, created_at`

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns every admin, newest first
func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.db.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	out := []domain.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	if !postgres.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	return scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email))
}

// AdminExists backs the auth middleware's per-request identity check.
func (r *AdminRepository) AdminExists(ctx context.Context, id string) (bool, error) {
	if !postgres.ValidID(id) {
		return false, nil
	}
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	const q = `
INSERT INTO admins (email, password_hash, name)
VALUES ($1, $2, $3)
RETURNING id::text, created_at
`
	err := r.db.QueryRow(ctx, q, a.Email, a.PasswordHash, a.Name).Scan(&a.ID, &a.CreatedAt)
	if postgres.IsUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// DeleteUnlessLast locks every admin row so two concurrent deletes cannot
// both observe a count of two and leave the table empty.
func (r *AdminRepository) DeleteUnlessLast(ctx context.Context, id string) error {
	if !postgres.ValidID(id) {
		return domain.ErrNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `SELECT id::text FROM admins FOR UPDATE`)
	if err != nil {
		return fmt.Errorf("lock admins: %w", err)
	}
	var (
		total int
		found bool
	)
	for rows.Next() {
		var rid string
		if err := rows.Scan(&rid); err != nil {
			rows.Close()
			return err
		}
		total++
		if rid == id {
			found = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if !found {
		return domain.ErrNotFound
	}
	if total <= 1 {
		return domain.ErrLastAdmin
	}

	if _, err := tx.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return tx.Commit(ctx)
}
