package analytics

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/utils"
	"fmt"
	"sort"
)

// จำนวนอันดับสูงสุดของแต่ละมุมมอง
const (
	TopActivitiesLimit = 10
	TopSchoolsLimit    = 15
	TopHotspotsLimit   = 10
)

// ComputeOverview ภาพรวมของ log ที่ผ่านตัวกรองแล้ว
func ComputeOverview(filtered []models.CheckInLog, reg Registries) models.OverviewStats {
	return computeOverview(filtered, reg, newIndex(reg))
}

func computeOverview(filtered []models.CheckInLog, reg Registries, ix *index) models.OverviewStats {
	users := make(map[string]struct{}, len(filtered))
	perActivity := make(map[string]int)
	for _, l := range filtered {
		users[l.UserID] = struct{}{}
		perActivity[l.ActivityID]++
	}

	totalCapacity := 0
	for _, a := range reg.Activities {
		if a.Capacity > 0 {
			totalCapacity += a.Capacity
		}
	}

	stats := models.OverviewStats{
		TotalCheckIns: len(filtered),
		UniqueUsers:   len(users),
		TotalCapacity: totalCapacity,
		TotalUsers:    len(reg.Users),
	}
	if totalCapacity > 0 {
		stats.Utilization = float64(stats.TotalCheckIns) / float64(totalCapacity) * 100
	} else {
		registered := len(reg.Users)
		if registered < 1 {
			registered = 1
		}
		stats.Utilization = float64(stats.UniqueUsers) / float64(registered) * 100
	}

	top := make([]models.TopActivity, 0, len(reg.Activities))
	for _, a := range reg.Activities {
		top = append(top, models.TopActivity{
			ActivityID:   a.ActivityID,
			Name:         a.Name,
			LocationName: ix.locationNameOf(a.LocationID),
			Count:        perActivity[a.ActivityID],
		})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > TopActivitiesLimit {
		top = top[:TopActivitiesLimit]
	}
	stats.TopActivities = top
	return stats
}

// ComputeSchoolStats ผู้เข้าร่วมไม่ซ้ำต่อโรงเรียน
func ComputeSchoolStats(filtered []models.CheckInLog, reg Registries) []models.SchoolStat {
	return computeSchoolStats(filtered, newIndex(reg))
}

func computeSchoolStats(filtered []models.CheckInLog, ix *index) []models.SchoolStat {
	type group struct {
		stat  models.SchoolStat
		index map[string]int // userID -> ตำแหน่งใน Participants
	}
	var order []*group
	bySchool := make(map[string]*group)

	for _, l := range filtered {
		name := ix.schoolNameOf(l.UserID)
		g, ok := bySchool[name]
		if !ok {
			g = &group{stat: models.SchoolStat{SchoolName: name}, index: make(map[string]int)}
			bySchool[name] = g
			order = append(order, g)
		}
		g.stat.TotalCheckIns++

		// พบซ้ำให้เขียนทับ lastSeen/lastActivity ตามลำดับ log
		displayName := l.UserName
		if displayName == "" {
			if u, ok := ix.users[l.UserID]; ok {
				displayName = u.Name
			}
		}
		if pos, seen := g.index[l.UserID]; seen {
			p := &g.stat.Participants[pos]
			p.LastSeen = l.Timestamp
			p.LastActivity = l.ActivityName
			continue
		}
		g.index[l.UserID] = len(g.stat.Participants)
		g.stat.Participants = append(g.stat.Participants, models.Participant{
			UserID:       l.UserID,
			Name:         displayName,
			LastSeen:     l.Timestamp,
			LastActivity: l.ActivityName,
		})
	}

	out := make([]models.SchoolStat, 0, len(order))
	for _, g := range order {
		g.stat.Count = len(g.stat.Participants)
		out = append(out, g.stat)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > TopSchoolsLimit {
		out = out[:TopSchoolsLimit]
	}
	return out
}

// ComputeLocationHotspots จำนวนเช็คอินต่อสถานที่ (นับทุกครั้ง ไม่ตัดคนซ้ำ)
func ComputeLocationHotspots(filtered []models.CheckInLog) []models.LabelCount {
	out := countBy(filtered, func(l models.CheckInLog) (string, bool) {
		if l.LocationName == "" {
			return UnknownLabel, true
		}
		return l.LocationName, true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > TopHotspotsLimit {
		out = out[:TopHotspotsLimit]
	}
	return out
}

// ComputeTimeline histogram รายชั่วโมง "HH:00" เรียงจากน้อยไปมาก
func ComputeTimeline(filtered []models.CheckInLog) []models.LabelCount {
	out := countBy(filtered, func(l models.CheckInLog) (string, bool) {
		hour, ok := utils.LocalHour(l.Timestamp)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%02d:00", hour), true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// countBy นับตาม key โดยเรียงตามลำดับที่พบครั้งแรก
func countBy(logs []models.CheckInLog, key func(models.CheckInLog) (string, bool)) []models.LabelCount {
	pos := make(map[string]int)
	var out []models.LabelCount
	for _, l := range logs {
		k, ok := key(l)
		if !ok {
			continue
		}
		if i, seen := pos[k]; seen {
			out[i].Count++
			continue
		}
		pos[k] = len(out)
		out = append(out, models.LabelCount{Label: k, Count: 1})
	}
	if out == nil {
		out = []models.LabelCount{}
	}
	return out
}
