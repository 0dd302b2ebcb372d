package locations

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

// ErrLocationNotFound ไม่พบสถานที่
var ErrLocationNotFound = errors.New("location not found")

// SaveLocation สร้างหรือแก้ไขสถานที่ตาม LocationID
func SaveLocation(ctx context.Context, l *models.CheckInLocation) error {
	_, err := DB.LocationCollection.UpdateOne(ctx,
		bson.M{"locationId": l.LocationID},
		bson.M{"$set": bson.M{
			"locationId": l.LocationID,
			"name":       l.Name,
			"latitude":   l.Latitude,
			"longitude":  l.Longitude,
			"radius":     l.Radius,
			"floor":      l.Floor,
			"status":     l.Status,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	log.Printf("✅ Saved location %s", l.LocationID)
	return nil
}

// DeleteLocation ลบสถานที่
func DeleteLocation(ctx context.Context, locationID string) error {
	res, err := DB.LocationCollection.DeleteOne(ctx, bson.M{"locationId": locationID})
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrLocationNotFound
	}
	log.Printf("✅ Deleted location %s", locationID)
	return nil
}

// GetLocation ดึงสถานที่ตาม LocationID
func GetLocation(ctx context.Context, locationID string) (*models.CheckInLocation, error) {
	var l models.CheckInLocation
	err := DB.LocationCollection.FindOne(ctx, bson.M{"locationId": locationID}).Decode(&l)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return &l, nil
}
