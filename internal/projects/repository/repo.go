package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/domain"
)

// projectColumns is the scan order shared by every SELECT below.
const projectColumns = `id, email, name, class, project_title, problem_statement, project_idea,
materials, working, challenges, learned, future, image_path, poster_config, status,
COALESCE(cloudinary_url, ''), COALESCE(cloudinary_public_id, ''), created_at`

// ProjectRepository provides persistence operations for student projects.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// GetByEmail returns the project owned by the given email.
func (r *ProjectRepository) GetByEmail(ctx context.Context, email string) (*domain.Project, error) {
	q := fmt.Sprintf(`SELECT %s FROM projects WHERE email = $1;`, projectColumns)
	return r.getOne(ctx, q, email)
}

// GetByID returns a project by its stable row id (teacher specific view).
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	q := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1;`, projectColumns)
	return r.getOne(ctx, q, id)
}

func (r *ProjectRepository) getOne(ctx context.Context, q string, arg interface{}) (*domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&p.ID, &p.Email, &p.Name, &p.Class, &p.ProjectTitle, &p.ProblemStatement,
		&p.ProjectIdea, &p.Materials, &p.Working, &p.Challenges, &p.Learned,
		&p.Future, &p.ImagePath, &p.PosterConfig, &p.Status,
		&p.CloudinaryURL, &p.CloudinaryPublicID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert writes the full record for p.Email and returns the stable row id.
// An existing row is overwritten field-for-field (full replace, not a patch);
// a missing row is inserted and the store assigns the id. A concurrent create
// for the same new email loses to the unique constraint and surfaces as
// domain.ErrConflict.
func (r *ProjectRepository) Upsert(ctx context.Context, p *domain.Project) (int64, error) {
	var existingID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM projects WHERE email = $1;`, p.Email).Scan(&existingID)
	switch {
	case err == nil:
		const q = `
UPDATE projects SET
  name=$1, class=$2, project_title=$3, problem_statement=$4, project_idea=$5,
  materials=$6, working=$7, challenges=$8, learned=$9, future=$10, image_path=$11,
  poster_config=$12, status=$13
WHERE email = $14;
`
		_, err = r.db.ExecContext(ctx, q,
			p.Name, p.Class, p.ProjectTitle, p.ProblemStatement, p.ProjectIdea,
			p.Materials, p.Working, p.Challenges, p.Learned, p.Future, p.ImagePath,
			p.PosterConfig, p.Status, p.Email,
		)
		if err != nil {
			return 0, err
		}
		return existingID, nil

	case errors.Is(err, sql.ErrNoRows):
		const q = `
INSERT INTO projects (
  email, name, class, project_title, problem_statement, project_idea,
  materials, working, challenges, learned, future, image_path, poster_config, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id;
`
		var id int64
		err = r.db.QueryRowContext(ctx, q,
			p.Email, p.Name, p.Class, p.ProjectTitle, p.ProblemStatement, p.ProjectIdea,
			p.Materials, p.Working, p.Challenges, p.Learned, p.Future, p.ImagePath,
			p.PosterConfig, p.Status,
		).Scan(&id)
		if err != nil {
			// unique violation on email → lost the insert race
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return 0, domain.ErrConflict
			}
			return 0, err
		}
		return id, nil

	default:
		return 0, err
	}
}

// SetMediaRef merges the external poster reference back into the row.
func (r *ProjectRepository) SetMediaRef(ctx context.Context, id int64, url, publicID string) error {
	const q = `
UPDATE projects SET cloudinary_url = $1, cloudinary_public_id = $2
WHERE id = $3;
`
	_, err := r.db.ExecContext(ctx, q, url, publicID, id)
	return err
}

// ListSubmitted returns all submitted projects, optionally restricted to one
// class, ordered by (class, name) for the teacher list view.
func (r *ProjectRepository) ListSubmitted(ctx context.Context, class string) ([]domain.Project, error) {
	q := fmt.Sprintf(`SELECT %s FROM projects WHERE status = 'submitted'`, projectColumns)
	args := []interface{}{}
	if class != "" && class != "All" {
		q += ` AND class = $1`
		args = append(args, class)
	}
	q += ` ORDER BY class, name;`
	return r.list(ctx, q, args...)
}

// ListAll returns every project row; used by the mirror backfill worker.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	q := fmt.Sprintf(`SELECT %s FROM projects ORDER BY id;`, projectColumns)
	return r.list(ctx, q)
}

func (r *ProjectRepository) list(ctx context.Context, q string, args ...interface{}) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Email, &p.Name, &p.Class, &p.ProjectTitle, &p.ProblemStatement,
			&p.ProjectIdea, &p.Materials, &p.Working, &p.Challenges, &p.Learned,
			&p.Future, &p.ImagePath, &p.PosterConfig, &p.Status,
			&p.CloudinaryURL, &p.CloudinaryPublicID, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
