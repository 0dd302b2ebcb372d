package analytics

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/utils"
	"fmt"
	"strings"
	"time"
)

// ชนิดข้อความสรุป
const (
	PromptSummary = "summary"
	PromptSchool  = "school"
)

// BuildPrompt เลือก template ตามชนิด
func BuildPrompt(kind string, report models.AnalyticsReport, now time.Time) (string, error) {
	switch kind {
	case "", PromptSummary:
		return BuildSummaryPrompt(report, now), nil
	case PromptSchool:
		return BuildSchoolPrompt(report, now), nil
	}
	return "", fmt.Errorf("unknown prompt kind %q", kind)
}

func filterLabel(f models.AnalyticsFilter) string {
	cluster := "ทุกกลุ่มเครือข่าย"
	if !isAll(f.Cluster) {
		cluster = "กลุ่มเครือข่าย " + f.Cluster
	}
	period := "ทั้งวัน"
	switch f.Time {
	case models.TimeMorning:
		period = "ช่วงเช้า"
	case models.TimeAfternoon:
		period = "ช่วงบ่าย"
	}
	return cluster + " / " + period
}

// BuildSummaryPrompt ข้อความสรุปภาพรวมสำหรับส่งให้ผู้บริหารหรือ AI วิเคราะห์ต่อ
func BuildSummaryPrompt(report models.AnalyticsReport, now time.Time) string {
	ov := report.Overview
	var b strings.Builder

	fmt.Fprintf(&b, "สรุปข้อมูลการเช็คอิน ณ วันที่ %s\n", utils.FormatThaiDateTime(now))
	fmt.Fprintf(&b, "ขอบเขตข้อมูล: %s\n\n", filterLabel(report.Filter))
	fmt.Fprintf(&b, "- จำนวนการเช็คอินทั้งหมด: %s ครั้ง\n", utils.FormatThaiNumber(ov.TotalCheckIns))
	fmt.Fprintf(&b, "- ผู้เข้าร่วมไม่ซ้ำ: %s คน\n", utils.FormatThaiNumber(ov.UniqueUsers))
	fmt.Fprintf(&b, "- อัตราการมีส่วนร่วม: %s\n", utils.FormatThaiPercent(ov.Utilization))

	if len(ov.TopActivities) > 0 {
		b.WriteString("\nกิจกรรมยอดนิยม:\n")
		for i, a := range ov.TopActivities {
			fmt.Fprintf(&b, "%d. %s (%s) %s ครั้ง\n", i+1, a.Name, a.LocationName, utils.FormatThaiNumber(a.Count))
		}
	}
	if len(report.Hotspots) > 0 {
		b.WriteString("\nจุดที่มีผู้เช็คอินมากที่สุด:\n")
		for i, h := range report.Hotspots {
			fmt.Fprintf(&b, "%d. %s %s ครั้ง\n", i+1, h.Label, utils.FormatThaiNumber(h.Count))
		}
	}
	if peak, ok := peakHour(report.Timeline); ok {
		fmt.Fprintf(&b, "\nช่วงเวลาที่หนาแน่นที่สุด: %s น. (%s ครั้ง)\n", peak.Label, utils.FormatThaiNumber(peak.Count))
	}

	b.WriteString("\nกรุณาวิเคราะห์แนวโน้มการเข้าร่วม และเสนอแนะแนวทางปรับปรุงการจัดกิจกรรมครั้งถัดไป")
	return b.String()
}

// BuildSchoolPrompt ข้อความสรุปการเข้าร่วมรายโรงเรียน
func BuildSchoolPrompt(report models.AnalyticsReport, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "รายงานการเข้าร่วมรายโรงเรียน ณ วันที่ %s\n", utils.FormatThaiDateTime(now))
	fmt.Fprintf(&b, "ขอบเขตข้อมูล: %s\n\n", filterLabel(report.Filter))
	if len(report.Schools) == 0 {
		b.WriteString("ยังไม่มีข้อมูลการเข้าร่วม\n")
		return b.String()
	}
	for i, s := range report.Schools {
		fmt.Fprintf(&b, "%d. %s: ผู้เข้าร่วม %s คน (เช็คอิน %s ครั้ง)\n",
			i+1, s.SchoolName, utils.FormatThaiNumber(s.Count), utils.FormatThaiNumber(s.TotalCheckIns))
	}
	b.WriteString("\nกรุณาสรุปโรงเรียนที่มีส่วนร่วมสูงและต่ำ พร้อมข้อเสนอแนะในการประชาสัมพันธ์")
	return b.String()
}

// peakHour ชั่วโมงที่มีจำนวนสูงสุด (เท่ากันเลือกชั่วโมงแรก)
func peakHour(timeline []models.LabelCount) (models.LabelCount, bool) {
	if len(timeline) == 0 {
		return models.LabelCount{}, false
	}
	peak := timeline[0]
	for _, t := range timeline[1:] {
		if t.Count > peak.Count {
			peak = t
		}
	}
	return peak, true
}
