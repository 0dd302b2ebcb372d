package exports

import (
	"Backend-CheckIn-Passport/src/models"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// LogSheetName ชื่อ sheet ของไฟล์ export
const LogSheetName = "CheckInLogs"

// WriteCheckInLogsXLSX เขียน log เป็นไฟล์ Excel คอลัมน์เดียวกับ CSV
// พิกัดและระยะทางเป็นตัวเลข ช่องว่างคือไม่มีค่า
func WriteCheckInLogsXLSX(w io.Writer, logs []models.CheckInLog) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), LogSheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(LogSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}

	for i, l := range logs {
		cells := logRow(l)
		row := make([]interface{}, len(cells))
		for j, v := range cells {
			row[j] = v
		}
		row[7], row[8] = l.UserLat, l.UserLng
		if l.Distance != nil {
			row[9] = *l.Distance
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(LogSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write xlsx row %s: %w", l.CheckInID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}
