package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order inside one transaction. Every statement is
// idempotent so Migrate can run on each deploy.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS admins (
  id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
  email         text NOT NULL UNIQUE,
  password_hash text NOT NULL,
  name          text NOT NULL,
  created_at    timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS countries (
  id      uuid PRIMARY KEY DEFAULT gen_random_uuid(),
  slug    text NOT NULL UNIQUE,
  name_en text NOT NULL,
  name_ar text NOT NULL DEFAULT '',
  name_fr text NOT NULL DEFAULT ''
)`,
	`CREATE TABLE IF NOT EXISTS industries (
  id      uuid PRIMARY KEY DEFAULT gen_random_uuid(),
  slug    text NOT NULL UNIQUE,
  name_en text NOT NULL,
  name_ar text NOT NULL DEFAULT '',
  name_fr text NOT NULL DEFAULT '',
  color   text NOT NULL DEFAULT 'gray'
)`,
	`CREATE TABLE IF NOT EXISTS projects (
  id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
  seq         bigserial NOT NULL,
  name_en     text NOT NULL,
  name_ar     text NOT NULL DEFAULT '',
  name_fr     text NOT NULL DEFAULT '',
  desc_en     text NOT NULL,
  desc_ar     text NOT NULL DEFAULT '',
  desc_fr     text NOT NULL DEFAULT '',
  website     text NOT NULL DEFAULT '',
  email       text NOT NULL DEFAULT '',
  phone       text NOT NULL DEFAULT '',
  country_id  uuid NOT NULL REFERENCES countries(id) ON DELETE RESTRICT,
  industry_id uuid NOT NULL REFERENCES industries(id) ON DELETE RESTRICT,
  logo_en     text NOT NULL DEFAULT '',
  logo_ar     text NOT NULL DEFAULT '',
  logo_fr     text NOT NULL DEFAULT '',
  created_at  timestamptz NOT NULL DEFAULT now(),
  updated_at  timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS projects_created_idx ON projects (created_at DESC, seq DESC)`,
	`CREATE INDEX IF NOT EXISTS projects_country_idx ON projects (country_id)`,
	`CREATE INDEX IF NOT EXISTS projects_industry_idx ON projects (industry_id)`,
}

// Migrate creates the tables and indexes the repositories expect.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}
