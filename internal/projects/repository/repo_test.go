package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/domain"
)

func setupRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewProjectRepository(db), mock, db
}

var scanColumns = []string{
	"id", "email", "name", "class", "project_title", "problem_statement", "project_idea",
	"materials", "working", "challenges", "learned", "future", "image_path", "poster_config",
	"status", "cloudinary_url", "cloudinary_public_id", "created_at",
}

func projectRow(id int64, email, name, class, title, status string) []driver.Value {
	return []driver.Value{
		id, email, name, class, title, "", "",
		"", "", "", "", "", "", "",
		status, "", "", time.Now(),
	}
}

func TestProjectRepository_GetByEmail(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("returns the record", func(t *testing.T) {
		rows := sqlmock.NewRows(scanColumns).
			AddRow(projectRow(1, "a@x.edu", "A Name", "6B", "Solar Oven", "draft")...)

		mock.ExpectQuery(`FROM projects WHERE email = \$1`).
			WithArgs("a@x.edu").
			WillReturnRows(rows)

		p, err := repo.GetByEmail(context.Background(), "a@x.edu")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, "Solar Oven", p.ProjectTitle)
		assert.Equal(t, domain.StatusDraft, p.Status)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`FROM projects WHERE email = \$1`).
			WithArgs("nobody@x.edu").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@x.edu")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Upsert(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("inserts when the email is new", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects WHERE email = \$1`).
			WithArgs("a@x.edu").
			WillReturnError(sql.ErrNoRows)

		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs(
				"a@x.edu", "A Name", "6B", "Solar Oven",
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), "draft",
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		id, err := repo.Upsert(context.Background(), &domain.Project{
			Email:        "a@x.edu",
			Name:         "A Name",
			Class:        "6B",
			ProjectTitle: "Solar Oven",
			Status:       domain.StatusDraft,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("updates in place and keeps the id", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects WHERE email = \$1`).
			WithArgs("a@x.edu").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		mock.ExpectExec(`UPDATE projects SET`).
			WithArgs(
				"A Name", "6B", "Solar Oven v2",
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), "submitted", "a@x.edu",
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := repo.Upsert(context.Background(), &domain.Project{
			Email:        "a@x.edu",
			Name:         "A Name",
			Class:        "6B",
			ProjectTitle: "Solar Oven v2",
			Status:       domain.StatusSubmitted,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("surfaces a concurrent create as ErrConflict", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM projects WHERE email = \$1`).
			WithArgs("a@x.edu").
			WillReturnError(sql.ErrNoRows)

		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Upsert(context.Background(), &domain.Project{Email: "a@x.edu"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_ListSubmitted(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("filters by class", func(t *testing.T) {
		rows := sqlmock.NewRows(scanColumns).
			AddRow(projectRow(1, "a@x.edu", "A Name", "6B", "Solar Oven", "submitted")...)

		mock.ExpectQuery(`FROM projects WHERE status = 'submitted' AND class = \$1 ORDER BY class, name`).
			WithArgs("6B").
			WillReturnRows(rows)

		out, err := repo.ListSubmitted(context.Background(), "6B")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "6B", out[0].Class)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("All disables the filter", func(t *testing.T) {
		mock.ExpectQuery(`FROM projects WHERE status = 'submitted' ORDER BY class, name`).
			WillReturnRows(sqlmock.NewRows(scanColumns))

		out, err := repo.ListSubmitted(context.Background(), "All")
		require.NoError(t, err)
		assert.Empty(t, out)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_SetMediaRef(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE projects SET cloudinary_url = \$1, cloudinary_public_id = \$2`).
		WithArgs("https://res.cloudinary.com/x/poster.png", "makerfest/abc", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMediaRef(context.Background(), 1, "https://res.cloudinary.com/x/poster.png", "makerfest/abc")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
