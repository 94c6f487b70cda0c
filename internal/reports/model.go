package reports

import "time"

// ===========================
// REPORT TYPES AND FORMATS
// ===========================

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// EventReportRow is one line of the org-wide events report.
type EventReportRow struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Scope         string    `json:"scope"`
	GroupName     string    `json:"group_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Location      string    `json:"location"`
	Capacity      int       `json:"capacity"`
	Registrations int       `json:"registrations"`
}

// RosterReportRow is one attendee line of a single event's roster.
type RosterReportRow struct {
	Reference    string    `json:"reference"`
	UserID       uint      `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
}
