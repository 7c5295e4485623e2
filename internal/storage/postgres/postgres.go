package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/MakerFest-25-26/makerfest-backend/config"
)

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}

func NewConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// EnsureSchema creates the projects table if it does not exist yet. The
// UNIQUE(email) constraint is the only concurrency guard on the write path.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const q = `
CREATE TABLE IF NOT EXISTS projects (
    id BIGSERIAL PRIMARY KEY,
    email TEXT UNIQUE NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    class TEXT NOT NULL DEFAULT '',
    project_title TEXT NOT NULL DEFAULT '',
    problem_statement TEXT NOT NULL DEFAULT '',
    project_idea TEXT NOT NULL DEFAULT '',
    materials TEXT NOT NULL DEFAULT '',
    working TEXT NOT NULL DEFAULT '',
    challenges TEXT NOT NULL DEFAULT '',
    learned TEXT NOT NULL DEFAULT '',
    future TEXT NOT NULL DEFAULT '',
    image_path TEXT NOT NULL DEFAULT '',
    poster_config TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft',
    cloudinary_url TEXT,
    cloudinary_public_id TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
