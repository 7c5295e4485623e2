package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/domain"
)

// Handler serves login/logout.
type Handler struct {
	sessions      *SessionStore
	teacherEmails map[string]bool
	secureCookies bool
}

func NewHandler(sessions *SessionStore, teacherEmails []string, secureCookies bool) *Handler {
	set := make(map[string]bool, len(teacherEmails))
	for _, e := range teacherEmails {
		set[strings.ToLower(e)] = true
	}
	return &Handler{sessions: sessions, teacherEmails: set, secureCookies: secureCookies}
}

type loginReq struct {
	Email string `json:"email"`
}

// RoleFor derives the role from the email: addresses whose local part starts
// with "teacher", plus the configured teacher list, get elevated privileges.
func (h *Handler) RoleFor(email string) string {
	lower := strings.ToLower(email)
	if strings.HasPrefix(lower, "teacher") || h.teacherEmails[lower] {
		return RoleTeacher
	}
	return RoleStudent
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if !domain.ValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	role := h.RoleFor(req.Email)
	id, err := h.sessions.Create(c.Request.Context(), req.Email, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetCookie(CookieName, id, int(SessionTTL.Seconds()), "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "role": role})
}

func (h *Handler) logout(c *gin.Context) {
	if id, err := c.Cookie(CookieName); err == nil && id != "" {
		_ = h.sessions.Delete(c.Request.Context(), id)
	}
	c.SetCookie(CookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Register attaches auth routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
}
