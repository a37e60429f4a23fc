package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter is implemented by report rows that can render themselves
// into a worksheet row.
type ExcelExporter interface {
	GetCellValues() []interface{}
}

// ExportExcel renders report rows into an xlsx workbook and returns the
// serialized bytes, ready to stream as a download.
func ExportExcel(rows []ExcelExporter, sheetName string, headers ...string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "Sheet1"
	}
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := row.GetCellValues()
		if len(headers) > 0 && len(values) != len(headers) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(values), len(headers))
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
