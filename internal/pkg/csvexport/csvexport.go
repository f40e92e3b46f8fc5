// Package csvexport renders in-memory collections as downloadable CSV
// documents. Every cell is quoted and embedded quotes are doubled, the
// minimal RFC 4180 escaping; values containing commas, quotes or
// newlines survive a round trip through any standard CSV reader.
package csvexport

import (
	"strings"
	"time"
)

const ContentType = "text/csv"

type Document struct {
	Columns []string
	Rows    [][]string
}

// Render produces the CSV text: a header row of column names, then one
// line per row, joined by "\n".
func (d Document) Render() string {
	var sb strings.Builder

	writeRow(&sb, d.Columns)
	for _, row := range d.Rows {
		sb.WriteByte('\n')
		writeRow(&sb, row)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(Quote(cell))
	}
}

// Quote wraps a single cell in double quotes, doubling any quote
// characters inside it.
func Quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// Filename builds an attachment name like "my-conference-utm-2026-08-30.csv"
// from a project name, an export tag and the current date.
func Filename(projectName, tag string, now time.Time) string {
	slug := slugify(projectName)
	if slug == "" {
		slug = "project"
	}

	return slug + "-" + tag + "-" + now.Format("2006-01-02") + ".csv"
}

func slugify(s string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(sb.String(), "-")
}
