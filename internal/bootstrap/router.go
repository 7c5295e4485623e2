package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/MakerFest-25-26/makerfest-backend/internal/api/http"
	"github.com/MakerFest-25-26/makerfest-backend/internal/api/http/middleware"
	"github.com/MakerFest-25-26/makerfest-backend/internal/auth"
	projhttp "github.com/MakerFest-25-26/makerfest-backend/internal/projects/http"
	"github.com/MakerFest-25-26/makerfest-backend/internal/storage/files"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	DB             *sql.DB
	Sessions       *auth.SessionStore
	Auth           *auth.Handler
	Projects       *projhttp.Handler
	Teacher        *projhttp.TeacherHandler
	Uploads        *files.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	if dep.Uploads != nil {
		r.Static("/uploads", dep.Uploads.Dir())
	}

	api := r.Group("/api")

	dep.Auth.Register(api.Group("/auth"))

	projectGroup := api.Group("/project")
	projectGroup.Use(auth.RequireSession(dep.Sessions))
	dep.Projects.Register(projectGroup)

	uploadGroup := api.Group("/cloudinary")
	uploadGroup.Use(auth.RequireSession(dep.Sessions))
	dep.Projects.RegisterUpload(uploadGroup)

	teacherGroup := api.Group("/teacher")
	teacherGroup.Use(auth.RequireSession(dep.Sessions), auth.RequireTeacher())
	dep.Teacher.Register(teacherGroup)

	return r
}
