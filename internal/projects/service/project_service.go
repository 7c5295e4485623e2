package service

import (
	"context"
	"log"
	"time"

	"github.com/MakerFest-25-26/makerfest-backend/internal/media"
	"github.com/MakerFest-25-26/makerfest-backend/internal/mirror"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/domain"
)

// RecordStore is the canonical, authoritative store of project records.
type RecordStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Project, error)
	Upsert(ctx context.Context, p *domain.Project) (int64, error)
	SetMediaRef(ctx context.Context, id int64, url, publicID string) error
}

// MirrorStore is the secondary dashboard copy. Its failures never cross this
// service's boundary: mirror writes are logged and swallowed.
type MirrorStore interface {
	Set(ctx context.Context, doc mirror.Document) error
	UpdateMedia(ctx context.Context, id int64, url, publicID string) error
}

// PosterUploader pushes rendered posters to the external image host.
type PosterUploader interface {
	UploadPoster(ctx context.Context, image, studentName, class string) (*media.UploadResult, error)
}

// Fields is the full set of caller-supplied values for one upsert. Anything
// left blank is written as blank: the write path is a full-record replace,
// so callers must resend everything, including ExistingImagePath when they
// want to keep a previously uploaded image.
type Fields struct {
	Name              string
	Class             string
	ProjectTitle      string
	ProblemStatement  string
	ProjectIdea       string
	Materials         string
	Working           string
	Challenges        string
	Learned           string
	Future            string
	PosterConfig      string
	Status            string
	ImagePath         string
	ExistingImagePath string
}

// Result reports the outcome of an upsert.
type Result struct {
	ID        int64  `json:"id"`
	ImagePath string `json:"image_path"`
}

// ProjectService owns the single write path: validate, write canonical,
// then best-effort mirror.
type ProjectService struct {
	records  RecordStore
	mirror   MirrorStore
	uploader PosterUploader
	now      func() time.Time
}

func NewProjectService(records RecordStore, mirror MirrorStore, uploader PosterUploader) *ProjectService {
	return &ProjectService{
		records:  records,
		mirror:   mirror,
		uploader: uploader,
		now:      time.Now,
	}
}

// Upsert validates the identity, replaces (or creates) the canonical record,
// then mirrors it. The mirror write begins only after the canonical write has
// committed, so the mirror never reflects a record that does not yet exist
// canonically; its failure is logged and swallowed.
func (s *ProjectService) Upsert(ctx context.Context, email string, f Fields) (*Result, error) {
	if !domain.ValidEmail(email) {
		return nil, domain.ErrValidation
	}

	imagePath := f.ImagePath
	if imagePath == "" {
		imagePath = f.ExistingImagePath
	}

	status := f.Status
	if status == "" {
		status = domain.StatusDraft
	}

	p := domain.Project{
		Email:            email,
		Name:             f.Name,
		Class:            f.Class,
		ProjectTitle:     f.ProjectTitle,
		ProblemStatement: f.ProblemStatement,
		ProjectIdea:      f.ProjectIdea,
		Materials:        f.Materials,
		Working:          f.Working,
		Challenges:       f.Challenges,
		Learned:          f.Learned,
		Future:           f.Future,
		ImagePath:        imagePath,
		PosterConfig:     f.PosterConfig,
		Status:           status,
	}

	id, err := s.records.Upsert(ctx, &p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.mirror.Set(ctx, mirror.FromProject(p, s.now())); err != nil {
		log.Printf("[mirror] sync failed for project %d (non-blocking): %v", id, err)
	}

	return &Result{ID: id, ImagePath: imagePath}, nil
}

// GetByEmail returns the caller's own record.
func (s *ProjectService) GetByEmail(ctx context.Context, email string) (*domain.Project, error) {
	return s.records.GetByEmail(ctx, email)
}

// AttachPoster uploads a rendered poster for the given project and merges the
// resulting reference back into both stores. The upload itself must succeed;
// both merge-backs are best-effort and never roll back the upload.
func (s *ProjectService) AttachPoster(ctx context.Context, id int64, posterImage, studentName, class string) (string, error) {
	if id == 0 || posterImage == "" || studentName == "" || class == "" {
		return "", domain.ErrValidation
	}

	res, err := s.uploader.UploadPoster(ctx, posterImage, studentName, class)
	if err != nil {
		return "", err
	}

	if err := s.mirror.UpdateMedia(ctx, id, res.SecureURL, res.PublicID); err != nil {
		log.Printf("[mirror] media update failed for project %d (non-blocking): %v", id, err)
	}

	if err := s.records.SetMediaRef(ctx, id, res.SecureURL, res.PublicID); err != nil {
		log.Printf("[store] media merge-back failed for project %d (non-blocking): %v", id, err)
	}

	return res.SecureURL, nil
}
