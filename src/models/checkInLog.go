package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CheckInLog บันทึกการเช็คอินหนึ่งครั้ง (สร้างแล้วแก้ไขไม่ได้)
type CheckInLog struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	CheckInID    string             `json:"CheckInID" bson:"checkInId" example:"5b0c1f0e-8a55-4c47-9d0e-3f5c2c4c1a10"`
	UserID       string             `json:"UserID" bson:"userId" example:"u001"`
	UserName     string             `json:"UserName" bson:"userName" example:"สมชาย ใจดี"`
	ActivityID   string             `json:"ActivityID" bson:"activityId" example:"ACT-01"`
	ActivityName string             `json:"ActivityName" bson:"activityName" example:"ฐานวิทยาศาสตร์"`
	LocationName string             `json:"LocationName" bson:"locationName" example:"อาคาร 1"`
	Timestamp    string             `json:"Timestamp" bson:"timestamp" example:"2024-01-01T08:00:00"`
	UserLat      float64            `json:"UserLat" bson:"userLat"`
	UserLng      float64            `json:"UserLng" bson:"userLng"`
	Distance     *float64           `json:"Distance" bson:"distance"` // เมตร
	Comment      *string            `json:"Comment" bson:"comment"`
	PhotoURL     *string            `json:"PhotoURL" bson:"photoUrl"`
	SurveyStatus string             `json:"SurveyStatus" bson:"surveyStatus" example:"pending"`
}

// CheckInRequest ข้อมูลที่ผู้เข้าร่วมส่งมาตอนเช็คอินด้วยตัวเอง
type CheckInRequest struct {
	UserID     string  `json:"UserID" validate:"required"`
	UserName   string  `json:"UserName" validate:"required"`
	ActivityID string  `json:"ActivityID" validate:"required"`
	UserLat    float64 `json:"UserLat" validate:"latitude"`
	UserLng    float64 `json:"UserLng" validate:"longitude"`
	Comment    *string `json:"Comment" validate:"omitempty,max=500"`
	PhotoURL   *string `json:"PhotoURL" validate:"omitempty,url"`
}
