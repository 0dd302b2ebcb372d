package analytics

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/utils"
)

func isAll(v string) bool {
	return v == "" || v == models.FilterAll
}

// FilterLogs คืน log ที่ผ่านทั้งตัวกรอง cluster และช่วงเวลา โดยคงลำดับเดิม
func FilterLogs(logs []models.CheckInLog, filter models.AnalyticsFilter, reg Registries) []models.CheckInLog {
	return filterLogs(logs, filter, newIndex(reg))
}

func filterLogs(logs []models.CheckInLog, filter models.AnalyticsFilter, ix *index) []models.CheckInLog {
	out := make([]models.CheckInLog, 0, len(logs))
	for _, l := range logs {
		if !isAll(filter.Cluster) && ix.clusterOf(l.UserID) != filter.Cluster {
			continue
		}
		if !matchTime(l.Timestamp, filter.Time) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// matchTime เช้า = ก่อน 12:00, บ่าย = ตั้งแต่ 12:00 (เวลา Bangkok)
// timestamp ที่อ่านไม่ได้ผ่านเฉพาะกรณี All
func matchTime(ts, timeFilter string) bool {
	if isAll(timeFilter) {
		return true
	}
	hour, ok := utils.LocalHour(ts)
	if !ok {
		return false
	}
	switch timeFilter {
	case models.TimeMorning:
		return hour < 12
	case models.TimeAfternoon:
		return hour >= 12
	}
	return false
}
