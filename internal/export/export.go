// Package export writes the dashboard's businesses and engagement
// events out as CSV, JSON, or XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/leadscout/outreach-dashboard/internal/domain"
)

// Format identifies an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format string, defaulting empty to JSON
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "":
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("invalid format %q, use 'json', 'csv', or 'xlsx'", s)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Filename returns the download filename for the format
func (f Format) Filename() string {
	return "businesses." + string(f)
}

// availableColumns returns the map of available business export columns
func availableColumns() map[string]func(b *domain.Business) string {
	return map[string]func(b *domain.Business) string{
		"ID":        func(b *domain.Business) string { return b.ID },
		"Name":      func(b *domain.Business) string { return b.Name },
		"Category":  func(b *domain.Business) string { return b.Category },
		"Address":   func(b *domain.Business) string { return b.Address },
		"Phone":     func(b *domain.Business) string { return b.Phone },
		"Rating":    func(b *domain.Business) string { return fmt.Sprintf("%.1f", b.Rating) },
		"Reviews":   func(b *domain.Business) string { return fmt.Sprintf("%d", b.TotalReviews) },
		"Website":   func(b *domain.Business) string { return fmt.Sprintf("%t", b.HasWebsite) },
		"Latitude":  func(b *domain.Business) string { return fmt.Sprintf("%f", b.Location.Lat) },
		"Longitude": func(b *domain.Business) string { return fmt.Sprintf("%f", b.Location.Lng) },
		"Status":    func(b *domain.Business) string { return string(b.Status) },
		"Last Interaction": func(b *domain.Business) string {
			if b.LastInteraction == nil {
				return ""
			}
			return b.LastInteraction.Format("2006-01-02 15:04:05")
		},
	}
}

// defaultColumns is the column order used when none are requested
var defaultColumns = []string{
	"ID", "Name", "Category", "Address", "Phone", "Rating", "Reviews",
	"Website", "Status", "Last Interaction",
}

// ParseColumns parses and validates a comma-separated column list,
// falling back to the default set when none are valid
func ParseColumns(colsParam string) []string {
	available := availableColumns()

	var selected []string
	if colsParam != "" {
		for _, col := range strings.Split(colsParam, ",") {
			col = strings.TrimSpace(col)
			if _, ok := available[col]; ok {
				selected = append(selected, col)
			}
		}
	}

	if len(selected) == 0 {
		selected = defaultColumns
	}

	return selected
}

// WriteCSV writes the businesses as CSV with the selected columns
func WriteCSV(w io.Writer, businesses []domain.Business, columns []string) error {
	available := availableColumns()

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range businesses {
		record := make([]string, len(columns))
		for j, col := range columns {
			record[j] = available[col](&businesses[i])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the businesses and events as one JSON document
func WriteJSON(w io.Writer, businesses []domain.Business, events []domain.EmailEvent) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	doc := map[string]interface{}{
		"businesses": businesses,
		"events":     events,
	}

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	return nil
}

// WriteXLSX writes a workbook with a Businesses sheet (selected
// columns) and an Events sheet
func WriteXLSX(w io.Writer, businesses []domain.Business, events []domain.EmailEvent, columns []string) error {
	available := availableColumns()

	f := excelize.NewFile()
	defer f.Close()

	const bizSheet = "Businesses"
	f.SetSheetName("Sheet1", bizSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(bizSheet, cell, col)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(bizSheet, "A1", lastCol, headerStyle)

	for i := range businesses {
		for j, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(bizSheet, cell, available[col](&businesses[i]))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(bizSheet, colName, colName, 15)
	}

	const eventSheet = "Events"
	if _, err := f.NewSheet(eventSheet); err != nil {
		return fmt.Errorf("failed to create events sheet: %w", err)
	}

	eventHeaders := []string{"ID", "Business ID", "Type", "Timestamp"}
	for i, col := range eventHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(eventSheet, cell, col)
	}
	lastCol, _ = excelize.CoordinatesToCellName(len(eventHeaders), 1)
	f.SetCellStyle(eventSheet, "A1", lastCol, headerStyle)

	for i, event := range events {
		values := []string{
			event.ID,
			event.BusinessID,
			string(event.Type),
			event.Timestamp.Format("2006-01-02 15:04:05"),
		}
		for j, val := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(eventSheet, cell, val)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
