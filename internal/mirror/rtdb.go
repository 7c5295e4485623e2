package mirror

import (
	"context"
	"fmt"
	"strconv"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/MakerFest-25-26/makerfest-backend/config"
)

const rootPath = "projects"

// Client talks to the Firebase Realtime Database mirror.
type Client struct {
	db *db.Client
}

// NewClient initializes the Firebase Admin SDK and returns a mirror client.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig) (*Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: cfg.DatabaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Database client: %w", err)
	}

	return &Client{db: client}, nil
}

// Set writes the full document at projects/<id>.
func (c *Client) Set(ctx context.Context, doc Document) error {
	if err := c.db.NewRef(rootPath+"/"+doc.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("mirror set failed: %w", err)
	}
	return nil
}

// UpdateMedia patches only the poster reference fields of projects/<id>.
func (c *Client) UpdateMedia(ctx context.Context, id int64, url, publicID string) error {
	ref := c.db.NewRef(rootPath + "/" + strconv.FormatInt(id, 10))
	err := ref.Update(ctx, map[string]interface{}{
		"cloudinary_url":         url,
		"cloudinary_public_id":   publicID,
		"cloudinary_uploaded_at": time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("mirror media update failed: %w", err)
	}
	return nil
}

// All returns every mirrored document.
func (c *Client) All(ctx context.Context) ([]Document, error) {
	var byID map[string]Document
	if err := c.db.NewRef(rootPath).Get(ctx, &byID); err != nil {
		return nil, fmt.Errorf("mirror read failed: %w", err)
	}

	out := make([]Document, 0, len(byID))
	for _, doc := range byID {
		out = append(out, doc)
	}
	return out, nil
}
