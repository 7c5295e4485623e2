// Package mirror is the best-effort copy of the canonical projects table,
// kept in Firebase Realtime Database under projects/<id> for read-heavy
// dashboard and export use. It is eventually consistent with Postgres: a
// reader here may observe a stale or absent record, and nothing bounds that
// window because failed writes are never retried.
package mirror

import (
	"strconv"
	"time"

	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/domain"
)

// Document is the mirrored copy of one project. Timestamp is the sync time
// in unix milliseconds; the cloudinary fields may lag behind the canonical
// row when the mirror write raced ahead of the media upload.
type Document struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Class                string `json:"class"`
	ProjectTitle         string `json:"project_title"`
	ProblemStatement     string `json:"problem_statement"`
	ProjectIdea          string `json:"project_idea"`
	Materials            string `json:"materials"`
	Working              string `json:"working"`
	Challenges           string `json:"challenges"`
	Learned              string `json:"learned"`
	Future               string `json:"future"`
	ImagePath            string `json:"image_path"`
	PosterConfig         string `json:"poster_config"`
	Status               string `json:"status"`
	CloudinaryURL        string `json:"cloudinary_url,omitempty"`
	CloudinaryPublicID   string `json:"cloudinary_public_id,omitempty"`
	CloudinaryUploadedAt int64  `json:"cloudinary_uploaded_at,omitempty"`
	Timestamp            int64  `json:"timestamp"`
}

// FromProject builds the mirror copy of p, stamped with the sync time.
func FromProject(p domain.Project, syncedAt time.Time) Document {
	return Document{
		ID:                 strconv.FormatInt(p.ID, 10),
		Email:              p.Email,
		Name:               p.Name,
		Class:              p.Class,
		ProjectTitle:       p.ProjectTitle,
		ProblemStatement:   p.ProblemStatement,
		ProjectIdea:        p.ProjectIdea,
		Materials:          p.Materials,
		Working:            p.Working,
		Challenges:         p.Challenges,
		Learned:            p.Learned,
		Future:             p.Future,
		ImagePath:          p.ImagePath,
		PosterConfig:       p.PosterConfig,
		Status:             p.Status,
		CloudinaryURL:      p.CloudinaryURL,
		CloudinaryPublicID: p.CloudinaryPublicID,
		Timestamp:          syncedAt.UnixMilli(),
	}
}
