package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	// FileName is the attachment name offered to the browser.
	FileName = "transcription_data.xlsx"

	// ContentType is the MIME type for xlsx workbooks.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Sheet1"
)

// Row is a single transcription report entry.
type Row struct {
	Name          string
	Location      string
	Transcription string
}

// Workbook renders a one-row xlsx report. Empty name/location fields are
// written as "N/A" so the spreadsheet never has blank cells.
func Workbook(row Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"Name", "Location", "Full Transcription"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	values := []interface{}{orNA(row.Name), orNA(row.Location), row.Transcription}
	if err := f.SetSheetRow(sheetName, "A2", &values); err != nil {
		return nil, fmt.Errorf("write row: %w", err)
	}

	// Widen the transcription column so the text is readable without resizing
	f.SetColWidth(sheetName, "A", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
