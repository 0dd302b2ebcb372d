package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ManualOverride ค่าที่แอดมินบังคับสถานะกิจกรรม
const (
	OverrideOpen   = "OPEN"
	OverrideClosed = "CLOSED"
)

// ActivityStatus สถานะกิจกรรมที่คำนวณได้
type ActivityStatus string

const (
	ActivityOpen       ActivityStatus = "OPEN"
	ActivityClosed     ActivityStatus = "CLOSED"
	ActivityNotStarted ActivityStatus = "NOT_STARTED"
	ActivityEnded      ActivityStatus = "ENDED"
	ActivityFull       ActivityStatus = "FULL"
)

// CheckInActivity กิจกรรม (ฐาน) ที่ให้เช็คอิน
type CheckInActivity struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ActivityID     string             `json:"ActivityID" bson:"activityId" validate:"required" example:"ACT-01"`
	Name           string             `json:"Name" bson:"name" validate:"required" example:"ฐานวิทยาศาสตร์"`
	Description    string             `json:"Description" bson:"description"`
	LocationID     string             `json:"LocationID" bson:"locationId" example:"LOC-01"`
	Category       string             `json:"Category" bson:"category" example:"science"`
	Capacity       int                `json:"Capacity" bson:"capacity" validate:"gte=0" example:"0"` // 0 = ไม่จำกัด
	CurrentCount   int                `json:"CurrentCount" bson:"currentCount" validate:"gte=0"`
	StartDateTime  *string            `json:"StartDateTime" bson:"startDateTime" example:"2024-01-01T08:00:00"`
	EndDateTime    *string            `json:"EndDateTime" bson:"endDateTime" example:"2024-01-01T16:00:00"`
	ManualOverride *string            `json:"ManualOverride" bson:"manualOverride" validate:"omitempty,oneof=OPEN CLOSED"`
	Image          string             `json:"Image" bson:"image"`
}

// ActivityView กิจกรรมพร้อมสถานะที่คำนวณแล้ว
type ActivityView struct {
	CheckInActivity
	Status       ActivityStatus `json:"Status"`
	LocationName string         `json:"LocationName"`
}
