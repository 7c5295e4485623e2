package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MakerFest-25-26/makerfest-backend/internal/auth"
	"github.com/MakerFest-25-26/makerfest-backend/internal/poster"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/domain"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/repository"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/service"
	"github.com/MakerFest-25-26/makerfest-backend/internal/storage/files"
)

// maxUploadBytes caps the optional project photo.
const maxUploadBytes = 10 << 20

// Handler serves the student-facing project routes.
type Handler struct {
	svc     *service.ProjectService
	repo    *repository.ProjectRepository
	uploads *files.Store
}

func NewHandler(svc *service.ProjectService, repo *repository.ProjectRepository, uploads *files.Store) *Handler {
	return &Handler{svc: svc, repo: repo, uploads: uploads}
}

// get returns the caller's own record; teachers may fetch any record by id.
func (h *Handler) get(c *gin.Context) {
	email := c.GetString(auth.CtxEmail)
	role := c.GetString(auth.CtxRole)

	var (
		p   *domain.Project
		err error
	)
	if idStr := c.Query("id"); role == auth.RoleTeacher && idStr != "" {
		var id int64
		id, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}
		p, err = h.repo.GetByID(c.Request.Context(), id)
	} else {
		p, err = h.repo.GetByEmail(c.Request.Context(), email)
	}

	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"project": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": p})
}

// save handles the multipart project form. An attached image goes through the
// local-disk side channel first; its reference rides along in the upsert.
func (h *Handler) save(c *gin.Context) {
	email := c.GetString(auth.CtxEmail)

	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}
	fields := form.fields()

	if fh, err := c.FormFile("image"); err == nil && fh.Size > 0 && fh.Filename != "undefined" {
		if fh.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
			return
		}
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project"})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project"})
			return
		}
		ref, err := h.uploads.Save(fh.Filename, data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project"})
			return
		}
		fields.ImagePath = ref
	}

	res, err := h.svc.Upsert(c.Request.Context(), email, fields)
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save project"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "id": res.ID, "imagePath": res.ImagePath})
	}
}

// renderPoster renders the caller's record with the requested theme. The
// default response is the document tree; format=png rasterizes at 2x.
func (h *Handler) renderPoster(c *gin.Context) {
	email := c.GetString(auth.CtxEmail)

	p, err := h.repo.GetByEmail(c.Request.Context(), email)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	themeID := c.Query("theme")
	if themeID == "" {
		themeID = p.PosterConfig
	}
	editable := c.Query("editable") == "true"

	doc := poster.Render(*p, poster.Lookup(themeID), editable)

	if c.Query("format") == "png" {
		png, err := poster.Rasterize(doc, poster.PrintScale)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render poster"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poster": doc})
}

// attachPoster uploads a rendered poster to the image host and merges the
// reference back into both stores.
func (h *Handler) attachPoster(c *gin.Context) {
	var req attachPosterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	url, err := h.svc.AttachPoster(c.Request.Context(), req.ProjectID, req.PosterImage, req.StudentName, req.Class)
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload to Cloudinary"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "cloudinary_url": url})
	}
}

// themes exposes the static theme catalog to the poster editor.
func (h *Handler) themes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": poster.Themes()})
}
