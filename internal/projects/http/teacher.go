package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MakerFest-25-26/makerfest-backend/internal/export"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/repository"
)

// TeacherHandler serves the dashboard list and the spreadsheet export.
type TeacherHandler struct {
	repo   *repository.ProjectRepository
	export *export.Service
}

func NewTeacherHandler(repo *repository.ProjectRepository, exp *export.Service) *TeacherHandler {
	return &TeacherHandler{repo: repo, export: exp}
}

// list returns submitted projects, optionally filtered by class, ordered by
// (class, name). Reads the canonical store: the dashboard shows live data.
func (h *TeacherHandler) list(c *gin.Context) {
	projects, err := h.repo.ListSubmitted(c.Request.Context(), c.Query("class"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// exportSpreadsheet streams the CSV built from the mirror store.
func (h *TeacherHandler) exportSpreadsheet(c *gin.Context) {
	class := c.Query("class")
	if class == "" {
		class = "All"
	}

	csv, err := h.export.Table(c.Request.Context(), class)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export spreadsheet"})
		return
	}

	filename := export.Filename("makerfest-posters", class, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", csv)
}
