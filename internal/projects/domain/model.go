package domain

import (
	"regexp"
	"time"
)

// Status values a project moves through. Re-editing after submission is
// allowed, so there is no state-machine guard on transitions.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

// Project is one student's submission. Email is the sole natural key; ID is
// assigned by the store at first creation and never changes afterwards.
// It is intentionally storage-agnostic and used across repository, mirror
// and HTTP layers.
type Project struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Class              string    `json:"class"`
	ProjectTitle       string    `json:"project_title"`
	ProblemStatement   string    `json:"problem_statement"`
	ProjectIdea        string    `json:"project_idea"`
	Materials          string    `json:"materials"`
	Working            string    `json:"working"`
	Challenges         string    `json:"challenges"`
	Learned            string    `json:"learned"`
	Future             string    `json:"future"`
	ImagePath          string    `json:"image_path"`
	PosterConfig       string    `json:"poster_config"`
	Status             string    `json:"status"`
	CloudinaryURL      string    `json:"cloudinary_url,omitempty"`
	CloudinaryPublicID string    `json:"cloudinary_public_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s is a well-formed email-like identity.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
