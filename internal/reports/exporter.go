package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders report rows into a downloadable document.
type Exporter interface {
	ExportEvents(format string, rows []EventReportRow) ([]byte, string, string, error)
	ExportRoster(format, eventTitle string, rows []RosterReportRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

//// ============================
/// EVENTS REPORT EXPORTS
//// ============================

func (e *exporter) ExportEvents(format string, rows []EventReportRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportEventsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportEventsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportEventsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for events report: %s", format)
	}
}

func (e *exporter) exportEventsCSV(rows []EventReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Scope", "Group", "Start Time", "End Time", "Location", "Capacity", "Registrations"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.Title,
			row.Scope,
			row.GroupName,
			row.StartTime.Format("2006-01-02 15:04:05"),
			row.EndTime.Format("2006-01-02 15:04:05"),
			row.Location,
			strconv.Itoa(row.Capacity),
			strconv.Itoa(row.Registrations),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportEventsExcel(rows []EventReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Events"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"ID", "Title", "Scope", "Group", "Start Time", "End Time", "Location", "Capacity", "Registrations"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), row.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), row.Scope)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), row.GroupName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), row.StartTime.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), row.EndTime.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), row.Location)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowNum), row.Capacity)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowNum), row.Registrations)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportEventsPDF(rows []EventReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Events Report")
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 9)
	widths := []float64{15, 55, 20, 40, 32, 32, 40, 20, 25}
	headers := []string{"ID", "Title", "Scope", "Group", "Start", "End", "Location", "Capacity", "Registered"}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		title := row.Title
		if len(title) > 35 {
			title = title[:32] + "..."
		}

		pdf.CellFormat(widths[0], 6, strconv.FormatUint(uint64(row.ID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, row.Scope, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, row.GroupName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, row.StartTime.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, row.EndTime.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, row.Location, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[7], 6, strconv.Itoa(row.Capacity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 6, strconv.Itoa(row.Registrations), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// ROSTER EXPORTS
//// ============================

func (e *exporter) ExportRoster(format, eventTitle string, rows []RosterReportRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportRosterCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("roster_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportRosterExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("roster_report_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportRosterPDF(eventTitle, rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("roster_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for roster report: %s", format)
	}
}

func (e *exporter) exportRosterCSV(rows []RosterReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Reference", "User ID", "Registered At"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.Reference,
			strconv.FormatUint(uint64(row.UserID), 10),
			row.RegisteredAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportRosterExcel(rows []RosterReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Roster"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Reference", "User ID", "Registered At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), row.Reference)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), row.UserID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), row.RegisteredAt.Format("2006-01-02 15:04:05"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportRosterPDF(eventTitle string, rows []RosterReportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Roster: %s", eventTitle))
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{90, 30, 50}
	headers := []string{"Reference", "User ID", "Registered At"}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 6, row.Reference, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, strconv.FormatUint(uint64(row.UserID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, row.RegisteredAt.Format("2006-01-02 15:04:05"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
