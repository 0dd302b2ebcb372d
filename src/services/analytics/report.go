package analytics

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/snapshot"
	"Backend-CheckIn-Passport/src/utils"
)

// RegistriesFrom ดึง registry ออกจาก snapshot
func RegistriesFrom(snap *snapshot.Snapshot) Registries {
	return Registries{
		Activities: snap.AppData.Activities,
		Locations:  snap.AppData.Locations,
		Schools:    snap.AppData.Schools,
		Clusters:   snap.AppData.Clusters,
		Users:      snap.Users,
	}
}

// BuildReport กรอง log ครั้งเดียวแล้วคำนวณทุกมุมมอง
func BuildReport(logs []models.CheckInLog, filter models.AnalyticsFilter, reg Registries) models.AnalyticsReport {
	ix := newIndex(reg)
	filtered := filterLogs(logs, filter, ix)
	return models.AnalyticsReport{
		Filter:      normalizeFilter(filter),
		Overview:    computeOverview(filtered, reg, ix),
		Schools:     computeSchoolStats(filtered, ix),
		Hotspots:    ComputeLocationHotspots(filtered),
		Timeline:    ComputeTimeline(filtered),
		GeneratedAt: utils.FormatTimestamp(utils.NowBangkok()),
	}
}

// BuildSnapshotReport BuildReport บน snapshot ปัจจุบัน
func BuildSnapshotReport(snap *snapshot.Snapshot, filter models.AnalyticsFilter) models.AnalyticsReport {
	report := BuildReport(snap.Logs, filter, RegistriesFrom(snap))
	report.SnapshotSeq = snap.Seq
	return report
}

func normalizeFilter(f models.AnalyticsFilter) models.AnalyticsFilter {
	if f.Cluster == "" {
		f.Cluster = models.FilterAll
	}
	if f.Time == "" {
		f.Time = models.FilterAll
	}
	return f
}
