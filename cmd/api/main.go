package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/MakerFest-25-26/makerfest-backend/config"
	"github.com/MakerFest-25-26/makerfest-backend/internal/auth"
	"github.com/MakerFest-25-26/makerfest-backend/internal/bootstrap"
	"github.com/MakerFest-25-26/makerfest-backend/internal/export"
	"github.com/MakerFest-25-26/makerfest-backend/internal/media"
	"github.com/MakerFest-25-26/makerfest-backend/internal/mirror"
	projhttp "github.com/MakerFest-25-26/makerfest-backend/internal/projects/http"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/repository"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/service"
	"github.com/MakerFest-25-26/makerfest-backend/internal/storage/files"
	"github.com/MakerFest-25-26/makerfest-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	ctx := context.Background()

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	mirrorClient, err := mirror.NewClient(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("failed to initialize mirror store: %v", err)
	}

	uploader, err := media.NewUploader(&cfg.Cloudinary)
	if err != nil {
		log.Fatalf("failed to initialize media uploader: %v", err)
	}

	uploads, err := files.New(cfg.App.UploadsDir)
	if err != nil {
		log.Fatalf("failed to initialize uploads dir: %v", err)
	}

	repo := repository.NewProjectRepository(db)
	svc := service.NewProjectService(repo, mirrorClient, uploader)
	sessions := auth.NewSessionStore(redisClient)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "makerfest-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.App.AllowedOrigins,
		DB:             db,
		Sessions:       sessions,
		Auth:           auth.NewHandler(sessions, cfg.App.TeacherEmails, cfg.App.Environment == "production"),
		Projects:       projhttp.NewHandler(svc, repo, uploads),
		Teacher:        projhttp.NewTeacherHandler(repo, export.New(mirrorClient)),
		Uploads:        uploads,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
