package reports

import (
	"context"
	"errors"
)

// ===========================
// REPORTS SERVICE
// ===========================

var ErrUnsupportedFormat = errors.New("unsupported report format")

type Service struct {
	Repo     *Repository
	Exporter Exporter
}

func NewService(repo *Repository, exporter Exporter) *Service {
	return &Service{Repo: repo, Exporter: exporter}
}

func validFormat(format string) bool {
	switch format {
	case FormatCSV, FormatExcel, FormatPDF:
		return true
	}
	return false
}

// Events renders the org-wide events report in the requested format. Returns
// the document bytes, a filename and a content type.
func (s *Service) Events(ctx context.Context, orgID uint, format string) ([]byte, string, string, error) {
	if !validFormat(format) {
		return nil, "", "", ErrUnsupportedFormat
	}
	rows, err := s.Repo.EventRows(ctx, orgID)
	if err != nil {
		return nil, "", "", err
	}
	return s.Exporter.ExportEvents(format, rows)
}

// Roster renders one event's attendee list in the requested format.
func (s *Service) Roster(ctx context.Context, eventID, orgID uint, format string) ([]byte, string, string, error) {
	if !validFormat(format) {
		return nil, "", "", ErrUnsupportedFormat
	}
	ev, rows, err := s.Repo.RosterRows(ctx, eventID, orgID)
	if err != nil {
		return nil, "", "", err
	}
	return s.Exporter.ExportRoster(format, ev.Title, rows)
}
