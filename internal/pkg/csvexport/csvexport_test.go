package csvexport

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	doc := Document{
		Columns: []string{"Name", "Amount"},
		Rows: [][]string{
			{"Acme, \"Inc\"", "100"},
			{"Globex", "0"},
		},
	}

	got := doc.Render()

	assert.Equal(t, "\"Name\",\"Amount\"\n\"Acme, \"\"Inc\"\"\",\"100\"\n\"Globex\",\"0\"", got)
}

func TestRenderRoundTrip(t *testing.T) {
	doc := Document{
		Columns: []string{"Name", "Notes"},
		Rows: [][]string{
			{"Acme, \"Inc\"", "line one\nline two"},
		},
	}

	records, err := csv.NewReader(strings.NewReader(doc.Render())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"Name", "Notes"}, records[0])
	assert.Equal(t, []string{"Acme, \"Inc\"", "line one\nline two"}, records[1])
}

func TestRenderHeaderOnly(t *testing.T) {
	doc := Document{Columns: []string{"A", "B"}}

	assert.Equal(t, "\"A\",\"B\"", doc.Render())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"say ""hi"""`, Quote(`say "hi"`))
	assert.Equal(t, `""`, Quote(""))
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		project string
		want    string
	}{
		{"lowercases and dashes", "My Conference 2026", "my-conference-2026-utm-2026-08-30.csv"},
		{"collapses punctuation", "Tech!! Expo", "tech-expo-utm-2026-08-30.csv"},
		{"empty name falls back", "  ", "project-utm-2026-08-30.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.project, "utm", now))
		})
	}
}
