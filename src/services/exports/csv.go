package exports

import (
	"Backend-CheckIn-Passport/src/models"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"CheckInID", "Timestamp", "UserID", "UserName", "ActivityID", "ActivityName",
	"LocationName", "UserLat", "UserLng", "Distance", "Comment", "PhotoURL", "SurveyStatus",
}

// WriteCheckInLogsCSV เขียน log เป็น CSV (มี BOM เพื่อให้ Excel อ่านภาษาไทยได้)
func WriteCheckInLogsCSV(w io.Writer, logs []models.CheckInLog) error {
	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, l := range logs {
		row := logRow(l)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", l.CheckInID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// logRow แถวของ log หนึ่งรายการตามลำดับ csvHeader
func logRow(l models.CheckInLog) []string {
	return []string{
		l.CheckInID,
		l.Timestamp,
		l.UserID,
		l.UserName,
		l.ActivityID,
		l.ActivityName,
		l.LocationName,
		formatFloat(l.UserLat),
		formatFloat(l.UserLng),
		optFloat(l.Distance),
		optString(l.Comment),
		optString(l.PhotoURL),
		l.SurveyStatus,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
