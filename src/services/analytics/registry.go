package analytics

import "Backend-CheckIn-Passport/src/models"

// UnknownLabel ป้ายสำหรับข้อมูลที่ resolve ไม่ได้
const UnknownLabel = "Unknown"

// NoSchoolLabel ป้ายของผู้ใช้ที่ไม่มี SchoolID
const NoSchoolLabel = "ไม่ระบุโรงเรียน"

// Registries ข้อมูลอ้างอิงที่ใช้ resolve log
type Registries struct {
	Activities []models.CheckInActivity
	Locations  []models.CheckInLocation
	Schools    []models.School
	Clusters   []models.Cluster
	Users      []models.User
}

// index lookup map ที่สร้างครั้งเดียวต่อการคำนวณ
type index struct {
	users     map[string]models.User
	schools   map[string]models.School
	locations map[string]models.CheckInLocation
}

func newIndex(r Registries) *index {
	ix := &index{
		users:     make(map[string]models.User, len(r.Users)),
		schools:   make(map[string]models.School, len(r.Schools)),
		locations: make(map[string]models.CheckInLocation, len(r.Locations)),
	}
	// id ซ้ำใช้ตัวแรก
	for _, u := range r.Users {
		if _, ok := ix.users[u.UserID]; !ok {
			ix.users[u.UserID] = u
		}
	}
	for _, s := range r.Schools {
		if _, ok := ix.schools[s.SchoolID]; !ok {
			ix.schools[s.SchoolID] = s
		}
	}
	for _, l := range r.Locations {
		if _, ok := ix.locations[l.LocationID]; !ok {
			ix.locations[l.LocationID] = l
		}
	}
	return ix
}

// clusterOf cluster ของผู้ใช้: ใช้ User.Cluster ก่อน ไม่มีค่อยดูจากโรงเรียน
func (ix *index) clusterOf(userID string) string {
	u, ok := ix.users[userID]
	if !ok {
		return ""
	}
	if u.Cluster != "" {
		return u.Cluster
	}
	if s, ok := ix.schools[u.SchoolID]; ok {
		return s.Cluster
	}
	return ""
}

// schoolNameOf ชื่อโรงเรียนของผู้ใช้
func (ix *index) schoolNameOf(userID string) string {
	u, ok := ix.users[userID]
	if !ok || u.SchoolID == "" {
		return NoSchoolLabel
	}
	if s, ok := ix.schools[u.SchoolID]; ok && s.SchoolName != "" {
		return s.SchoolName
	}
	return u.SchoolID
}

func (ix *index) locationNameOf(locationID string) string {
	if l, ok := ix.locations[locationID]; ok && l.Name != "" {
		return l.Name
	}
	return UnknownLabel
}
