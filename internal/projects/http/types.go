package http

import "github.com/MakerFest-25-26/makerfest-backend/internal/projects/service"

// projectForm is the multipart form a student submits. The write path is a
// full-record replace: anything the form omits is saved as blank.
type projectForm struct {
	Name              string `form:"name"`
	Class             string `form:"class"`
	ProjectTitle      string `form:"project_title"`
	ProblemStatement  string `form:"problem_statement"`
	ProjectIdea       string `form:"project_idea"`
	Materials         string `form:"materials"`
	Working           string `form:"working"`
	Challenges        string `form:"challenges"`
	Learned           string `form:"learned"`
	Future            string `form:"future"`
	PosterConfig      string `form:"poster_config"`
	Status            string `form:"status"`
	ExistingImagePath string `form:"existingImagePath"`
}

func (f projectForm) fields() service.Fields {
	return service.Fields{
		Name:              f.Name,
		Class:             f.Class,
		ProjectTitle:      f.ProjectTitle,
		ProblemStatement:  f.ProblemStatement,
		ProjectIdea:       f.ProjectIdea,
		Materials:         f.Materials,
		Working:           f.Working,
		Challenges:        f.Challenges,
		Learned:           f.Learned,
		Future:            f.Future,
		PosterConfig:      f.PosterConfig,
		Status:            f.Status,
		ExistingImagePath: f.ExistingImagePath,
	}
}

type attachPosterReq struct {
	ProjectID   int64  `json:"project_id"`
	PosterImage string `json:"poster_image"`
	StudentName string `json:"student_name"`
	Class       string `json:"class"`
}
