package models

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

// Workbook is a parsed spreadsheet: sheet names in file order plus the
// rows of each sheet keyed by header.
type Workbook struct {
	SheetNames []string
	Sheets     map[string][]RowRecord
}

// ParseWorkbook reads an xlsx stream into header keyed rows. The first
// non empty row of each sheet is taken as the header row; trailing cells
// beyond the header width are dropped, short rows pad with empty strings.
func ParseWorkbook(reader io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, utils.WrapKind(utils.ErrKindParseError, err)
	}
	defer f.Close()

	wb := &Workbook{Sheets: map[string][]RowRecord{}}
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, utils.WrapKind(utils.ErrKindParseError, err)
		}
		wb.SheetNames = append(wb.SheetNames, sheetName)
		wb.Sheets[sheetName] = rowsToRecords(rows)
	}
	return wb, nil
}

// FirstSheetRows returns the rows of the first sheet, or nil for an
// empty workbook. Missing data degrades to an empty record list.
func (wb *Workbook) FirstSheetRows() []RowRecord {
	if wb == nil || len(wb.SheetNames) == 0 {
		return nil
	}
	return wb.Sheets[wb.SheetNames[0]]
}

func rowsToRecords(rows [][]string) []RowRecord {
	var headers []string
	var records []RowRecord
	for _, row := range rows {
		if headers == nil {
			if rowIsEmpty(row) {
				continue
			}
			headers = make([]string, len(row))
			for i, h := range row {
				headers[i] = strings.TrimSpace(h)
			}
			continue
		}
		record := make(RowRecord, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
