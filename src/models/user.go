package models

// User ผู้ใช้งาน (ผู้เข้าร่วม/แอดมิน)
type User struct {
	UserID   string `json:"UserID" bson:"userId"`
	Name     string `json:"Name" bson:"name"`
	SchoolID string `json:"SchoolID" bson:"schoolId"`
	Cluster  string `json:"Cluster" bson:"cluster"`
	Role     string `json:"Role" bson:"role"`
	Level    string `json:"Level" bson:"level"`
}
