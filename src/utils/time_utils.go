package utils

import (
	"log"
	"strings"
	"time"
)

var bangkok = loadBangkok()

func loadBangkok() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		// ไม่มี tzdata ในเครื่อง ใช้ offset คงที่แทน (ไทยไม่มี DST)
		log.Printf("⚠️ Error loading timezone 'Asia/Bangkok': %v. Using fixed +07:00 instead.", err)
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// BangkokLocation timezone ที่ใช้แสดงผลทั้งระบบ
func BangkokLocation() *time.Location {
	return bangkok
}

// NowBangkok เวลาปัจจุบันตาม timezone Bangkok
func NowBangkok() time.Time {
	return time.Now().In(bangkok)
}

// รูปแบบ timestamp ที่มีโซนเวลาในตัว
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// รูปแบบที่ไม่มีโซนเวลา ตีความเป็นเวลา Bangkok
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp แปลง timestamp (ISO-8601) เป็นเวลา Bangkok
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(bangkok), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, bangkok); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LocalHour ชั่วโมง (0-23) ตามเวลา Bangkok ของ timestamp
func LocalHour(s string) (int, bool) {
	t, ok := ParseTimestamp(s)
	if !ok {
		return 0, false
	}
	return t.Hour(), true
}

// FormatTimestamp รูปแบบ timestamp ที่บันทึกลง log
func FormatTimestamp(t time.Time) string {
	return t.In(bangkok).Format("2006-01-02T15:04:05-07:00")
}
