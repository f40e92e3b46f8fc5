package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/eventdeskhq/eventdesk-api/internal/domain"
	"github.com/eventdeskhq/eventdesk-api/internal/pkg/csvexport"
	"github.com/eventdeskhq/eventdesk-api/internal/pkg/utm"
	"github.com/eventdeskhq/eventdesk-api/internal/repository"
	"github.com/eventdeskhq/eventdesk-api/internal/repository/dao"
)

var (
	ErrUnknownUtmEvent    = repository.ErrUnknownUtmEvent
	ErrUnknownBulkAction  = errors.New("unknown bulk action")
	ErrEmptyBulkSelection = errors.New("bulk action requires at least one id")
)

const (
	BulkActionDelete = "delete"
	BulkActionReset  = "reset"
)

var exportColumns = []string{
	"Name", "Website URL", "Tracking Link", "Source", "Medium", "Campaign",
	"Term", "Content", "Visits", "Conversions", "Conversion Rate", "Created At",
}

type UtmRepositoryIface interface {
	ResourceRepository[domain.UtmRecord]

	Track(ctx context.Context, projectID, id uint, event dao.UtmEvent) error
	BulkDelete(ctx context.Context, projectID uint, ids []uint) (int64, error)
	BulkReset(ctx context.Context, projectID uint, ids []uint) (int64, error)
	FindByLookup(ctx context.Context, projectID uint, lookup dao.UtmLookup) (domain.UtmRecord, error)
	FindFiltered(ctx context.Context, projectID uint, lookup dao.UtmLookup) ([]domain.UtmRecord, error)
}

// UtmService covers UTM record CRUD plus link building, visit and
// conversion tracking, bulk maintenance and CSV export.
type UtmService struct {
	*ResourceService[domain.UtmRecord]

	repo UtmRepositoryIface
}

func NewUtmService(repo UtmRepositoryIface, projects ProjectChecker) *UtmService {
	return &UtmService{
		ResourceService: NewResourceService[domain.UtmRecord](repo, projects),
		repo:            repo,
	}
}

// Link builds the tracking URL for a stored record. Invalid website
// URLs yield an empty link rather than an error.
func (s *UtmService) Link(record domain.UtmRecord) string {
	return utm.BuildURL(record.WebsiteURL, utm.Params{
		Source:   record.Source,
		Medium:   record.Medium,
		Campaign: record.Campaign,
		Term:     record.Term,
		Content:  record.Content,
	})
}

// Track records a visit or conversion event against a stored record.
func (s *UtmService) Track(ctx context.Context, projectID, id uint, event string) error {
	var daoEvent dao.UtmEvent
	switch event {
	case string(dao.UtmVisit):
		daoEvent = dao.UtmVisit
	case string(dao.UtmConversion):
		daoEvent = dao.UtmConversion
	default:
		return ErrUnknownUtmEvent
	}

	if err := s.repo.Track(ctx, projectID, id, daoEvent); err != nil {
		return fmt.Errorf("s.repo.Track -> %w", err)
	}

	return nil
}

// Bulk applies a maintenance action to the given id set in one batched
// statement and returns the number of affected rows.
func (s *UtmService) Bulk(ctx context.Context, projectID uint, action string, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyBulkSelection
	}

	switch action {
	case BulkActionDelete:
		affected, err := s.repo.BulkDelete(ctx, projectID, ids)
		if err != nil {
			return 0, fmt.Errorf("s.repo.BulkDelete -> %w", err)
		}
		return affected, nil
	case BulkActionReset:
		affected, err := s.repo.BulkReset(ctx, projectID, ids)
		if err != nil {
			return 0, fmt.Errorf("s.repo.BulkReset -> %w", err)
		}
		return affected, nil
	default:
		return 0, ErrUnknownBulkAction
	}
}

// Resolve maps incoming utm_* parameters to the most recent matching
// record, as used by the tracking snippet.
func (s *UtmService) Resolve(ctx context.Context, projectID uint, lookup dao.UtmLookup) (domain.UtmRecord, error) {
	record, err := s.repo.FindByLookup(ctx, projectID, lookup)
	if err != nil {
		return domain.UtmRecord{}, fmt.Errorf("s.repo.FindByLookup -> %w", err)
	}

	return record, nil
}

// Find returns the project's records matching the non-empty lookup
// fields.
func (s *UtmService) Find(ctx context.Context, projectID uint, lookup dao.UtmLookup) ([]domain.UtmRecord, error) {
	records, err := s.repo.FindFiltered(ctx, projectID, lookup)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFiltered -> %w", err)
	}

	return records, nil
}

// Stats aggregates visit and conversion totals across a project.
func (s *UtmService) Stats(ctx context.Context, projectID uint) (domain.UtmStats, error) {
	records, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return domain.UtmStats{}, fmt.Errorf("s.repo.ListByProject -> %w", err)
	}

	return domain.ComputeUtmStats(records), nil
}

// ExportCSV renders records as a CSV download. The conversion rate
// column is computed inline during row construction.
func (s *UtmService) ExportCSV(project domain.Project, records []domain.UtmRecord, now time.Time) (filename, body string) {
	doc := csvexport.Document{Columns: exportColumns}
	for _, r := range records {
		doc.Rows = append(doc.Rows, []string{
			r.Name,
			r.WebsiteURL,
			s.Link(r),
			r.Source,
			r.Medium,
			r.Campaign,
			r.Term,
			r.Content,
			strconv.FormatInt(r.Visits, 10),
			strconv.FormatInt(r.Conversions, 10),
			fmt.Sprintf("%.1f%%", domain.Percentage(r.Conversions, r.Visits)),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return csvexport.Filename(project.Name, "utm", now), doc.Render()
}

// Snippet renders the copyable client-side tracking script for a
// project.
func (s *UtmService) Snippet(baseURL string, projectID uint) string {
	return utm.Snippet(baseURL, projectID)
}
