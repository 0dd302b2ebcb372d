package activities

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/utils"
	"time"
)

// ResolveStatus สถานะกิจกรรม ณ เวลา now
// ลำดับ: ManualOverride > ช่วงเวลาเปิด-ปิด > ความจุ
func ResolveStatus(a models.CheckInActivity, now time.Time) models.ActivityStatus {
	if a.ManualOverride != nil {
		switch *a.ManualOverride {
		case models.OverrideOpen:
			return models.ActivityOpen
		case models.OverrideClosed:
			return models.ActivityClosed
		}
	}

	if a.StartDateTime != nil {
		if start, ok := utils.ParseTimestamp(*a.StartDateTime); ok && now.Before(start) {
			return models.ActivityNotStarted
		}
	}
	if a.EndDateTime != nil {
		if end, ok := utils.ParseTimestamp(*a.EndDateTime); ok && !now.Before(end) {
			return models.ActivityEnded
		}
	}

	if a.Capacity > 0 && a.CurrentCount >= a.Capacity {
		return models.ActivityFull
	}
	return models.ActivityOpen
}

// BuildViews กิจกรรมพร้อมสถานะและชื่อสถานที่ ตามลำดับเดิม
func BuildViews(acts []models.CheckInActivity, locations []models.CheckInLocation, now time.Time) []models.ActivityView {
	names := make(map[string]string, len(locations))
	for _, l := range locations {
		names[l.LocationID] = l.Name
	}
	views := make([]models.ActivityView, 0, len(acts))
	for _, a := range acts {
		name, ok := names[a.LocationID]
		if !ok {
			name = "Unknown"
		}
		views = append(views, models.ActivityView{
			CheckInActivity: a,
			Status:          ResolveStatus(a, now),
			LocationName:    name,
		})
	}
	return views
}
