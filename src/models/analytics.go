package models

// ค่าตัวกรองที่หมายถึง "ไม่กรอง"
const FilterAll = "All"

// ช่วงเวลาของวัน
const (
	TimeMorning   = "Morning"
	TimeAfternoon = "Afternoon"
)

// AnalyticsFilter ตัวกรองของหน้า dashboard
type AnalyticsFilter struct {
	Cluster string `json:"cluster" query:"cluster" example:"All"`
	Time    string `json:"time" query:"time" validate:"omitempty,oneof=All Morning Afternoon" example:"All"`
}

// TopActivity จำนวนเช็คอินต่อกิจกรรม
type TopActivity struct {
	ActivityID   string `json:"activityId"`
	Name         string `json:"name"`
	LocationName string `json:"locationName"`
	Count        int    `json:"count"`
}

// OverviewStats ภาพรวม
type OverviewStats struct {
	TotalCheckIns int           `json:"totalCheckIns"`
	UniqueUsers   int           `json:"uniqueUsers"`
	Utilization   float64       `json:"utilization"` // เปอร์เซ็นต์
	TotalCapacity int           `json:"totalCapacity"`
	TotalUsers    int           `json:"totalUsers"`
	TopActivities []TopActivity `json:"topActivities"`
}

// Participant ผู้เข้าร่วมที่ไม่ซ้ำของโรงเรียน
type Participant struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	LastSeen     string `json:"lastSeen"`
	LastActivity string `json:"lastActivity"`
}

// SchoolStat สถิติการเข้าร่วมรายโรงเรียน
type SchoolStat struct {
	SchoolName    string        `json:"schoolName"`
	Count         int           `json:"count"` // ผู้เข้าร่วมไม่ซ้ำ
	TotalCheckIns int           `json:"totalCheckIns"`
	Participants  []Participant `json:"participants"`
}

// LabelCount จำนวนต่อป้ายกำกับ (สถานที่/ชั่วโมง)
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AnalyticsReport ผลรวมทั้งหมดของ dashboard
type AnalyticsReport struct {
	Filter      AnalyticsFilter `json:"filter"`
	Overview    OverviewStats   `json:"overview"`
	Schools     []SchoolStat    `json:"schools"`
	Hotspots    []LabelCount    `json:"hotspots"`
	Timeline    []LabelCount    `json:"timeline"`
	SnapshotSeq uint64          `json:"snapshotSeq"`
	GeneratedAt string          `json:"generatedAt"`
}
