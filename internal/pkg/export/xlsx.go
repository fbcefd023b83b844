package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of workbooks produced by this package.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table is a single-sheet spreadsheet: a header row followed by data rows.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]interface{}
}

// WriteXLSX renders the table as an .xlsx workbook into w.
func WriteXLSX(w io.Writer, table Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := make([]interface{}, len(table.Header))
	for i, h := range table.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if len(table.Header) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("create header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(table.Header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
