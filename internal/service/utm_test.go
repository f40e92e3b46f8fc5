package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
	"github.com/eventdeskhq/eventdesk-api/internal/repository/dao"
)

type fakeUtmRepo struct {
	*fakeResourceRepo[domain.UtmRecord]

	tracked map[uint]map[dao.UtmEvent]int64
}

func newFakeUtmRepo() *fakeUtmRepo {
	return &fakeUtmRepo{
		fakeResourceRepo: newFakeResourceRepo(
			func(r domain.UtmRecord) uint { return r.ProjectID },
			func(r domain.UtmRecord, id uint) domain.UtmRecord { r.ID = id; return r },
		),
		tracked: map[uint]map[dao.UtmEvent]int64{},
	}
}

func (f *fakeUtmRepo) Track(_ context.Context, projectID, id uint, event dao.UtmEvent) error {
	r, ok := f.items[id]
	if !ok || r.ProjectID != projectID {
		return ErrNotFound
	}

	if f.tracked[id] == nil {
		f.tracked[id] = map[dao.UtmEvent]int64{}
	}
	f.tracked[id][event]++

	return nil
}

func (f *fakeUtmRepo) BulkDelete(_ context.Context, projectID uint, ids []uint) (int64, error) {
	var affected int64
	for _, id := range ids {
		if r, ok := f.items[id]; ok && r.ProjectID == projectID {
			delete(f.items, id)
			affected++
		}
	}

	return affected, nil
}

func (f *fakeUtmRepo) BulkReset(_ context.Context, projectID uint, ids []uint) (int64, error) {
	var affected int64
	for _, id := range ids {
		if r, ok := f.items[id]; ok && r.ProjectID == projectID {
			r.Visits = 0
			r.Conversions = 0
			f.items[id] = r
			affected++
		}
	}

	return affected, nil
}

func (f *fakeUtmRepo) FindByLookup(_ context.Context, projectID uint, lookup dao.UtmLookup) (domain.UtmRecord, error) {
	records, _ := f.FindFiltered(context.Background(), projectID, lookup)
	if len(records) == 0 {
		return domain.UtmRecord{}, ErrNotFound
	}

	return records[0], nil
}

func (f *fakeUtmRepo) FindFiltered(_ context.Context, projectID uint, lookup dao.UtmLookup) ([]domain.UtmRecord, error) {
	var out []domain.UtmRecord
	for id := uint(1); id < f.nextID; id++ {
		r, ok := f.items[id]
		if !ok || r.ProjectID != projectID {
			continue
		}
		if lookup.Source != "" && r.Source != lookup.Source {
			continue
		}
		if lookup.Medium != "" && r.Medium != lookup.Medium {
			continue
		}
		if lookup.Campaign != "" && r.Campaign != lookup.Campaign {
			continue
		}
		out = append(out, r)
	}

	return out, nil
}

func newUtmService(t *testing.T) (*UtmService, *fakeUtmRepo) {
	t.Helper()
	repo := newFakeUtmRepo()
	projects := &fakeProjectChecker{existing: map[uint]bool{1: true}}

	return NewUtmService(repo, projects), repo
}

func TestUtmServiceLink(t *testing.T) {
	svc, _ := newUtmService(t)

	link := svc.Link(domain.UtmRecord{
		WebsiteURL: "example.com",
		Source:     "google",
		Medium:     "cpc",
		Campaign:   "launch",
	})

	assert.Equal(t, "https://example.com/?utm_source=google&utm_medium=cpc&utm_campaign=launch", link)
}

func TestUtmServiceTrack(t *testing.T) {
	svc, repo := newUtmService(t)

	created, err := svc.Create(context.Background(), 1, domain.UtmRecord{ProjectID: 1, Source: "google"})
	require.NoError(t, err)

	require.NoError(t, svc.Track(context.Background(), 1, created.ID, "visit"))
	require.NoError(t, svc.Track(context.Background(), 1, created.ID, "conversion"))
	require.NoError(t, svc.Track(context.Background(), 1, created.ID, "visit"))

	assert.Equal(t, int64(2), repo.tracked[created.ID][dao.UtmVisit])
	assert.Equal(t, int64(1), repo.tracked[created.ID][dao.UtmConversion])
}

func TestUtmServiceTrackUnknownEvent(t *testing.T) {
	svc, _ := newUtmService(t)

	err := svc.Track(context.Background(), 1, 1, "click")

	assert.ErrorIs(t, err, ErrUnknownUtmEvent)
}

func TestUtmServiceBulk(t *testing.T) {
	svc, _ := newUtmService(t)

	var ids []uint
	for _, source := range []string{"google", "newsletter", "twitter"} {
		created, err := svc.Create(context.Background(), 1, domain.UtmRecord{ProjectID: 1, Source: source, Visits: 10})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	affected, err := svc.Bulk(context.Background(), 1, BulkActionReset, ids[:2])
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	affected, err = svc.Bulk(context.Background(), 1, BulkActionDelete, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestUtmServiceBulkValidation(t *testing.T) {
	svc, _ := newUtmService(t)

	_, err := svc.Bulk(context.Background(), 1, BulkActionDelete, nil)
	assert.ErrorIs(t, err, ErrEmptyBulkSelection)

	_, err = svc.Bulk(context.Background(), 1, "truncate", []uint{1})
	assert.ErrorIs(t, err, ErrUnknownBulkAction)
}

func TestUtmServiceStats(t *testing.T) {
	svc, _ := newUtmService(t)

	records := []domain.UtmRecord{
		{ProjectID: 1, Source: "google", Visits: 100, Conversions: 10},
		{ProjectID: 1, Source: "newsletter", Visits: 50, Conversions: 5},
	}
	for _, r := range records {
		_, err := svc.Create(context.Background(), 1, r)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.UtmStats{Records: 2, Visits: 150, Conversions: 15, ConversionRate: 10}, stats)
}

func TestUtmServiceExportCSV(t *testing.T) {
	svc, _ := newUtmService(t)
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	project := domain.Project{Name: "Tech Expo"}
	records := []domain.UtmRecord{
		{
			Name:        "Launch ads",
			WebsiteURL:  "example.com",
			Source:      "google",
			Medium:      "cpc",
			Visits:      200,
			Conversions: 25,
			CreatedAt:   time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
		},
	}

	filename, body := svc.ExportCSV(project, records, now)

	assert.Equal(t, "tech-expo-utm-2026-08-30.csv", filename)

	lines := strings.Split(body, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"Tracking Link"`)
	assert.Contains(t, lines[0], `"Conversion Rate"`)
	assert.Contains(t, lines[1], `"https://example.com/?utm_source=google&utm_medium=cpc"`)
	assert.Contains(t, lines[1], `"12.5%"`)
	assert.Contains(t, lines[1], `"2026-08-01 09:30"`)
}

func TestUtmServiceSnippet(t *testing.T) {
	svc, _ := newUtmService(t)

	snippet := svc.Snippet("https://crm.example.com", 7)

	assert.Contains(t, snippet, "https://crm.example.com/api/v1/projects/7/utm")
	assert.Contains(t, snippet, "trackUtmConversion")
	assert.Contains(t, snippet, "utm_source")
}

func TestUtmServiceResolve(t *testing.T) {
	svc, _ := newUtmService(t)

	created, err := svc.Create(context.Background(), 1, domain.UtmRecord{ProjectID: 1, Source: "google", Medium: "cpc"})
	require.NoError(t, err)

	got, err := svc.Resolve(context.Background(), 1, dao.UtmLookup{Source: "google", Medium: "cpc"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Resolve(context.Background(), 1, dao.UtmLookup{Source: "bing"})
	assert.ErrorIs(t, err, ErrNotFound)
}
