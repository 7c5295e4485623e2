package export

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MakerFest-25-26/makerfest-backend/internal/mirror"
)

type fakeMirror struct {
	docs []mirror.Document
	err  error
}

func (f *fakeMirror) All(context.Context) ([]mirror.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func doc(name, class, title, status, url string, ts int64) mirror.Document {
	return mirror.Document{
		Name:          name,
		Class:         class,
		ProjectTitle:  title,
		Status:        status,
		CloudinaryURL: url,
		Timestamp:     ts,
	}
}

func rows(t *testing.T, csv []byte) []string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(string(csv), "\n"), "\n")
	require.NotEmpty(t, lines)
	return lines
}

func TestTable(t *testing.T) {
	ts := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC).UnixMilli()

	m := &fakeMirror{docs: []mirror.Document{
		doc("zoe", "7A", "Wind Turbine", "submitted", "https://res.cloudinary.com/z.png", ts),
		doc("Adam", "7A", "Water Filter", "draft", "", 0),
		doc("Billie", "6B", "Solar Oven", "submitted", "", ts),
	}}
	svc := New(m)

	t.Run("header plus one row per mirrored record", func(t *testing.T) {
		lines := rows(t, mustTable(t, svc, "All"))
		require.Len(t, lines, 4)
		assert.Equal(t,
			`"Student Name","Class","Project Title","Status","Submission Date","Cloudinary Poster Link","PDF Link"`,
			lines[0])
	})

	t.Run("sorts by class then name, case-insensitive", func(t *testing.T) {
		lines := rows(t, mustTable(t, svc, "All"))
		assert.Contains(t, lines[1], `"Billie","6B"`)
		assert.Contains(t, lines[2], `"Adam","7A"`)
		assert.Contains(t, lines[3], `"zoe","7A"`)
	})

	t.Run("class filter restricts rows", func(t *testing.T) {
		lines := rows(t, mustTable(t, svc, "6B"))
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], `"Billie"`)
	})

	t.Run("duplicated link column, sentinel when absent", func(t *testing.T) {
		lines := rows(t, mustTable(t, svc, "7A"))
		assert.True(t, strings.HasSuffix(lines[1], `"Not uploaded","Not uploaded"`), lines[1])
		assert.True(t, strings.HasSuffix(lines[2],
			`"https://res.cloudinary.com/z.png","https://res.cloudinary.com/z.png"`), lines[2])
	})

	t.Run("date and status fallbacks", func(t *testing.T) {
		lines := rows(t, mustTable(t, svc, "7A"))
		// Adam has no timestamp and a draft status.
		assert.Contains(t, lines[1], `"draft","N/A"`)
		assert.Contains(t, lines[2], `"submitted","11/3/2025"`)
	})

	t.Run("status defaults to draft when absent", func(t *testing.T) {
		svc := New(&fakeMirror{docs: []mirror.Document{doc("x", "6B", "T", "", "", 0)}})
		lines := rows(t, mustTable(t, svc, "All"))
		assert.Contains(t, lines[1], `"draft"`)
	})

	t.Run("escapes quotes by doubling them", func(t *testing.T) {
		svc := New(&fakeMirror{docs: []mirror.Document{
			doc(`Amy "Ace" Lee`, "6B", `The "Best" Oven`, "submitted", "", 0),
		}})
		lines := rows(t, mustTable(t, svc, "All"))
		assert.Contains(t, lines[1], `"Amy ""Ace"" Lee"`)
		assert.Contains(t, lines[1], `"The ""Best"" Oven"`)
	})

	t.Run("surfaces mirror read failure", func(t *testing.T) {
		svc := New(&fakeMirror{err: errors.New("rtdb unavailable")})
		_, err := svc.Table(context.Background(), "All")
		assert.Error(t, err)
	})
}

func mustTable(t *testing.T, svc *Service, class string) []byte {
	t.Helper()
	out, err := svc.Table(context.Background(), class)
	require.NoError(t, err)
	return out
}

func TestFilename(t *testing.T) {
	at := time.UnixMilli(1730000000000)
	assert.Equal(t, "makerfest-posters-6B-1730000000000.csv", Filename("makerfest-posters", "6B", at))
	assert.Equal(t, "makerfest-posters-All-1730000000000.csv", Filename("makerfest-posters", "", at))
}
