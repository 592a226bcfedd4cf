package output

import (
	"fmt"

	"github.com/rpgo/peoplefmt/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ExcelSheetName is the worksheet ExcelFormatter writes to.
const ExcelSheetName = "People"

// ExcelFormatter writes people into a single-sheet xlsx workbook: a bold header
// row from the first record's keys followed by one row per record.
type ExcelFormatter struct{}

func (x ExcelFormatter) Name() string { return "xlsx" }

func (x ExcelFormatter) Format(people []domain.Record) ([]byte, error) {
	if len(people) == 0 {
		return nil, ErrEmptyCollection
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ExcelSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := people[0].Keys()
	if err := writeSheetRow(f, 1, header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	if len(header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(ExcelSheetName, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
	}

	for i, p := range people {
		if err := writeSheetRow(f, i+2, p.Values()); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheetRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(ExcelSheetName, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
