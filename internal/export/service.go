// Package export serializes the teacher spreadsheet. It reads only from the
// mirror store, never the canonical table.
package export

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MakerFest-25-26/makerfest-backend/internal/mirror"
)

// MirrorReader is the slice of the mirror store this service needs.
type MirrorReader interface {
	All(ctx context.Context) ([]mirror.Document, error)
}

var header = []string{
	"Student Name",
	"Class",
	"Project Title",
	"Status",
	"Submission Date",
	"Cloudinary Poster Link",
	"PDF Link",
}

// Service builds CSV exports of mirrored submissions.
type Service struct {
	mirror MirrorReader
	coll   *collate.Collator
}

func New(m MirrorReader) *Service {
	return &Service{
		mirror: m,
		coll:   collate.New(language.English, collate.IgnoreCase),
	}
}

// Table reads every mirrored record, applies the class filter ("" or "All"
// keeps everything), sorts by (class, name) with locale-aware comparison and
// serializes to CSV. Every field is double-quoted with embedded quotes
// doubled. The poster link column is duplicated verbatim into the PDF link
// column; both fall back to the "Not uploaded" sentinel.
func (s *Service) Table(ctx context.Context, classFilter string) ([]byte, error) {
	docs, err := s.mirror.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read mirror: %w", err)
	}

	filtered := make([]mirror.Document, 0, len(docs))
	for _, d := range docs {
		if classFilter == "" || classFilter == "All" || d.Class == classFilter {
			filtered = append(filtered, d)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if c := s.coll.CompareString(filtered[i].Class, filtered[j].Class); c != 0 {
			return c < 0
		}
		return s.coll.CompareString(filtered[i].Name, filtered[j].Name) < 0
	})

	var sb strings.Builder
	writeRow(&sb, header)
	for _, d := range filtered {
		status := d.Status
		if status == "" {
			status = "draft"
		}

		date := "N/A"
		if d.Timestamp != 0 {
			date = time.UnixMilli(d.Timestamp).UTC().Format("1/2/2006")
		}

		link := d.CloudinaryURL
		if link == "" {
			link = "Not uploaded"
		}

		writeRow(&sb, []string{d.Name, d.Class, d.ProjectTitle, status, date, link, link})
	}

	return []byte(sb.String()), nil
}

func writeRow(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
}

// Filename suggests the export attachment name.
func Filename(prefix, classFilter string, at time.Time) string {
	if classFilter == "" {
		classFilter = "All"
	}
	return fmt.Sprintf("%s-%s-%d.csv", prefix, classFilter, at.UnixMilli())
}
