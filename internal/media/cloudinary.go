// Package media pushes rendered posters to Cloudinary and hands back a
// stable (secure URL, public id) reference.
package media

import (
	"context"
	"fmt"
	"regexp"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/MakerFest-25-26/makerfest-backend/config"
)

// UploadResult is the external reference for an uploaded poster.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Uploader wraps the Cloudinary SDK.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func NewUploader(cfg *config.CloudinaryConfig) (*Uploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are required")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &Uploader{cld: cld}, nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeFolderHint reduces a folder-naming hint to alphanumerics plus
// underscores so it is safe in a Cloudinary folder path.
func SanitizeFolderHint(s string) string {
	return nonAlnum.ReplaceAllString(s, "_")
}

// UploadPoster stores a rendered poster image (raw base64 data URI) under
// makerfest-posters/<class>/<student> and returns its external reference.
func (u *Uploader) UploadPoster(ctx context.Context, image, studentName, class string) (*UploadResult, error) {
	folder := fmt.Sprintf("makerfest-posters/%s/%s", SanitizeFolderHint(class), SanitizeFolderHint(studentName))

	res, err := u.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:         folder,
		Format:         "png",
		Transformation: "q_auto:good/f_auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload failed: %s", res.Error.Message)
	}

	return &UploadResult{SecureURL: res.SecureURL, PublicID: res.PublicID}, nil
}
