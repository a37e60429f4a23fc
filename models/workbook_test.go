package models

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseWorkbook(t *testing.T) {
	reader := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"Style#", "Season", "Price"},
		{"K123", "FA26", "50"},
		{"K124", "SP27", "60"},
	})

	wb, err := ParseWorkbook(reader)
	if err != nil {
		t.Fatal(err)
	}
	rows := wb.FirstSheetRows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := rows[0].pickString("Style#"); got != "K123" {
		t.Fatalf("first row style = %q", got)
	}
	if got := rows[1].pickString("Season"); got != "SP27" {
		t.Fatalf("second row season = %q", got)
	}
}

func TestParseWorkbookSkipsLeadingBlankRows(t *testing.T) {
	reader := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"", ""},
		{"Style#", "Season"},
		{"K200", "26FA"},
	})
	wb, err := ParseWorkbook(reader)
	if err != nil {
		t.Fatal(err)
	}
	rows := wb.FirstSheetRows()
	if len(rows) != 1 || rows[0].pickString("Style#") != "K200" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	if _, err := ParseWorkbook(bytes.NewReader([]byte("not a spreadsheet"))); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestFirstSheetRowsNilWorkbook(t *testing.T) {
	var wb *Workbook
	if rows := wb.FirstSheetRows(); rows != nil {
		t.Fatalf("rows = %+v, want nil", rows)
	}
}
