package passport

import (
	"Backend-CheckIn-Passport/src/models"
	"log"
	"strings"
)

// EvaluateMission คำนวณความคืบหน้าภารกิจจาก log ทั้งหมดของผู้ใช้หนึ่งคน
// ไม่ error และไม่แก้ไข input; เรียกใหม่ทุกครั้งที่ log เปลี่ยน
func EvaluateMission(mission models.PassportMission, logs []models.CheckInLog, activities []models.CheckInActivity) models.MissionProgress {
	// เทียบวันที่แบบ prefix ของ string ไม่ใช่ช่วงเวลาตามปฏิทิน
	dayLogs := make([]models.CheckInLog, 0, len(logs))
	for _, l := range logs {
		if strings.HasPrefix(l.Timestamp, mission.Date) {
			dayLogs = append(dayLogs, l)
		}
	}

	// ActivityID ซ้ำใช้ตัวแรก
	categoryOf := make(map[string]string, len(activities))
	for _, a := range activities {
		if _, ok := categoryOf[a.ActivityID]; !ok {
			categoryOf[a.ActivityID] = a.Category
		}
	}

	statuses := make([]models.RequirementStatus, 0, len(mission.Requirements))
	progress := 0
	for _, req := range mission.Requirements {
		st := evaluateRequirement(req, dayLogs, categoryOf)
		if st.Achieved {
			progress++
		}
		statuses = append(statuses, st)
	}

	total := len(mission.Requirements)
	return models.MissionProgress{
		MissionID:         mission.ID,
		Progress:          progress,
		Total:             total,
		IsComplete:        total > 0 && progress == total,
		RequirementStatus: statuses,
	}
}

func evaluateRequirement(req models.Requirement, dayLogs []models.CheckInLog, categoryOf map[string]string) models.RequirementStatus {
	st := models.RequirementStatus{Requirement: req}

	switch req.Type {
	case models.RequirementSpecificActivity:
		for _, l := range dayLogs {
			if l.ActivityID == req.TargetID {
				st.Achieved = true
				st.CurrentVal = 1
				break
			}
		}
	case models.RequirementTotalCount:
		st.CurrentVal = len(dayLogs)
		st.Achieved = st.CurrentVal >= req.TargetValue
	case models.RequirementCategoryCount:
		for _, l := range dayLogs {
			// กิจกรรมที่หาไม่เจอใน registry ไม่นับ
			if cat, ok := categoryOf[l.ActivityID]; ok && cat == req.TargetID {
				st.CurrentVal++
			}
		}
		st.Achieved = st.CurrentVal >= req.TargetValue
	default:
		log.Printf("⚠️ Unknown requirement type %q (requirement %s), treated as not achieved", req.Type, req.ID)
	}

	return st
}

// EvaluateAll ประเมินทุกภารกิจตามลำดับใน config
func EvaluateAll(missions []models.PassportMission, logs []models.CheckInLog, activities []models.CheckInActivity) []models.MissionProgress {
	out := make([]models.MissionProgress, 0, len(missions))
	for _, m := range missions {
		out = append(out, EvaluateMission(m, logs, activities))
	}
	return out
}

// FindMission หาภารกิจตาม id; ok=false ถ้าไม่มีใน config
func FindMission(missions []models.PassportMission, id string) (models.PassportMission, bool) {
	for _, m := range missions {
		if m.ID == id {
			return m, true
		}
	}
	return models.PassportMission{}, false
}
