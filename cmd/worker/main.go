// The worker backfills the Firebase mirror from the canonical projects table.
// The API's mirror writes are best-effort with no retry, so this job heals
// whatever staleness they leave behind: run it once with -once, or let it
// run nightly.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MakerFest-25-26/makerfest-backend/config"
	"github.com/MakerFest-25-26/makerfest-backend/internal/mirror"
	"github.com/MakerFest-25-26/makerfest-backend/internal/projects/repository"
	"github.com/MakerFest-25-26/makerfest-backend/internal/storage/postgres"
)

func main() {
	once := flag.Bool("once", false, "run a single backfill and exit")
	spec := flag.String("schedule", "0 0 2 * * *", "cron schedule (with seconds)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	mirrorClient, err := mirror.NewClient(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("failed to initialize mirror store: %v", err)
	}

	repo := repository.NewProjectRepository(db)

	if *once {
		if err := backfill(ctx, repo, mirrorClient); err != nil {
			log.Fatalf("backfill failed: %v", err)
		}
		return
	}

	c := cron.New(cron.WithSeconds())
	_, err = c.AddFunc(*spec, func() {
		if err := backfill(context.Background(), repo, mirrorClient); err != nil {
			log.Printf("backfill failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("failed to create cron job: %v", err)
	}

	log.Printf("mirror backfill scheduled (%s)", *spec)
	c.Run()
}

func backfill(ctx context.Context, repo *repository.ProjectRepository, m *mirror.Client) error {
	start := time.Now()

	projects, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}

	synced := 0
	for _, p := range projects {
		if err := m.Set(ctx, mirror.FromProject(p, time.Now())); err != nil {
			log.Printf("[mirror] backfill of project %d failed: %v", p.ID, err)
			continue
		}
		synced++
	}

	log.Printf("[mirror] backfill done: %d/%d projects in %s", synced, len(projects), time.Since(start))
	return nil
}
