package models

// AppData ข้อมูลอ้างอิงทั้งหมดที่หน้าเว็บใช้
type AppData struct {
	Activities []CheckInActivity `json:"activities"`
	Locations  []CheckInLocation `json:"locations"`
	Schools    []School          `json:"schools"`
	Clusters   []Cluster         `json:"clusters"`
	Missions   []PassportMission `json:"missions"`
}
