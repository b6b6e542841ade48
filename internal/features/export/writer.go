package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook renders the header and rows into a single-sheet xlsx.
func WriteWorkbook(rows [][]any) ([]byte, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(headers))
	for i, title := range headers {
		header[i] = title
	}

	if err := setRow(file, 1, header); err != nil {
		return nil, err
	}

	boldStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := file.SetRowStyle(sheetName, 1, 1, boldStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range rows {
		if row == nil {
			continue
		}

		if err := setRow(file, i+2, row); err != nil {
			return nil, err
		}
	}

	for i, width := range columnWidths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve column: %w", err)
		}

		if err := file.SetColWidth(sheetName, column, column, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

func setRow(file *excelize.File, rowNumber int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}

	if err := file.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNumber, err)
	}

	return nil
}
