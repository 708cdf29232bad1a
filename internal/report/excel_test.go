package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func readCells(t *testing.T, data []byte) map[string]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to open generated workbook: %v", err)
	}
	defer f.Close()

	cells := make(map[string]string)
	for _, ref := range []string{"A1", "B1", "C1", "A2", "B2", "C2"} {
		val, err := f.GetCellValue(sheetName, ref)
		if err != nil {
			t.Fatalf("Failed to read cell %s: %v", ref, err)
		}
		cells[ref] = val
	}
	return cells
}

func TestWorkbook(t *testing.T) {
	data, err := Workbook(Row{
		Name:          "Payal",
		Location:      "India",
		Transcription: "Hi, this is me Payal. I am from India.",
	})
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}

	cells := readCells(t, data)

	if cells["A1"] != "Name" || cells["B1"] != "Location" || cells["C1"] != "Full Transcription" {
		t.Errorf("Unexpected header row: %q %q %q", cells["A1"], cells["B1"], cells["C1"])
	}
	if cells["A2"] != "Payal" {
		t.Errorf("A2 = %q, expected %q", cells["A2"], "Payal")
	}
	if cells["B2"] != "India" {
		t.Errorf("B2 = %q, expected %q", cells["B2"], "India")
	}
	if cells["C2"] != "Hi, this is me Payal. I am from India." {
		t.Errorf("C2 = %q, expected the full transcription", cells["C2"])
	}
}

func TestWorkbookMissingFields(t *testing.T) {
	data, err := Workbook(Row{Transcription: "no introductions here"})
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}

	cells := readCells(t, data)
	if cells["A2"] != "N/A" {
		t.Errorf("A2 = %q, expected %q", cells["A2"], "N/A")
	}
	if cells["B2"] != "N/A" {
		t.Errorf("B2 = %q, expected %q", cells["B2"], "N/A")
	}
	if cells["C2"] != "no introductions here" {
		t.Errorf("C2 = %q, expected transcription to pass through", cells["C2"])
	}
}
