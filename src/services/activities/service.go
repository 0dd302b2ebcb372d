package activities

import (
	DB "Backend-CheckIn-Passport/src/database"
	"Backend-CheckIn-Passport/src/models"
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrActivityNotFound ไม่พบกิจกรรม
var ErrActivityNotFound = errors.New("activity not found")

// SaveActivity สร้างหรือแก้ไขกิจกรรมตาม ActivityID (upsert)
// CurrentCount ไม่ถูกเขียนทับ ค่านี้เพิ่มผ่านการเช็คอินเท่านั้น
func SaveActivity(ctx context.Context, a *models.CheckInActivity) error {
	set := bson.M{
		"name":           a.Name,
		"description":    a.Description,
		"locationId":     a.LocationID,
		"category":       a.Category,
		"capacity":       a.Capacity,
		"startDateTime":  a.StartDateTime,
		"endDateTime":    a.EndDateTime,
		"manualOverride": a.ManualOverride,
		"image":          a.Image,
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"activityId": a.ActivityID, "currentCount": 0},
	}
	_, err := DB.ActivityCollection.UpdateOne(ctx,
		bson.M{"activityId": a.ActivityID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}
	log.Printf("✅ Saved activity %s", a.ActivityID)
	return nil
}

// DeleteActivity ลบกิจกรรม (log เดิมยังอยู่)
func DeleteActivity(ctx context.Context, activityID string) error {
	res, err := DB.ActivityCollection.DeleteOne(ctx, bson.M{"activityId": activityID})
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrActivityNotFound
	}
	log.Printf("✅ Deleted activity %s", activityID)
	return nil
}

// GetActivity ดึงกิจกรรมตาม ActivityID
func GetActivity(ctx context.Context, activityID string) (*models.CheckInActivity, error) {
	var a models.CheckInActivity
	err := DB.ActivityCollection.FindOne(ctx, bson.M{"activityId": activityID}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}
	return &a, nil
}

// IncrementCount เพิ่มจำนวนผู้เช็คอิน
func IncrementCount(ctx context.Context, activityID string, delta int) error {
	res, err := DB.ActivityCollection.UpdateOne(ctx,
		bson.M{"activityId": activityID},
		bson.M{"$inc": bson.M{"currentCount": delta}},
	)
	if err != nil {
		return fmt.Errorf("failed to update activity count: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// ReserveSeat จองที่นั่งหนึ่งที่ด้วย update แบบมีเงื่อนไข
// ok=false เมื่อกิจกรรมเต็มแล้ว (capacity <= 0 คือไม่จำกัด)
// enforceCapacity=false ใช้กับกิจกรรมที่ admin สั่งเปิดเอง
func ReserveSeat(ctx context.Context, activityID string, enforceCapacity bool) (ok bool, err error) {
	filter := bson.M{"activityId": activityID}
	if enforceCapacity {
		filter["$or"] = bson.A{
			bson.M{"capacity": bson.M{"$exists": false}},
			bson.M{"capacity": bson.M{"$lte": 0}},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$currentCount", "$capacity"}}},
		}
	}
	res, err := DB.ActivityCollection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"currentCount": 1}})
	if err != nil {
		return false, fmt.Errorf("failed to reserve seat: %w", err)
	}
	return res.MatchedCount == 1, nil
}

// ReleaseSeat คืนที่นั่งที่จองไว้
func ReleaseSeat(ctx context.Context, activityID string) error {
	return IncrementCount(ctx, activityID, -1)
}
