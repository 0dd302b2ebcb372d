package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CheckInLocation จุดเช็คอิน
type CheckInLocation struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	LocationID string             `json:"LocationID" bson:"locationId" validate:"required" example:"LOC-01"`
	Name       string             `json:"Name" bson:"name" validate:"required" example:"อาคาร 1"`
	Latitude   float64            `json:"Latitude" bson:"latitude" validate:"latitude"`
	Longitude  float64            `json:"Longitude" bson:"longitude" validate:"longitude"`
	Radius     float64            `json:"Radius" bson:"radius" validate:"gte=0" example:"100"` // เมตร
	Floor      string             `json:"Floor" bson:"floor"`
	Status     string             `json:"Status" bson:"status" example:"active"`
}
