package checkins

import (
	DB "Backend-CheckIn-Passport/src/database"
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/activities"
	"Backend-CheckIn-Passport/src/services/locations"
	"Backend-CheckIn-Passport/src/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SurveyPending สถานะแบบสอบถามตั้งต้นของ log ใหม่
const SurveyPending = "pending"

// ErrCheckInNotFound ไม่พบ log
var ErrCheckInNotFound = errors.New("check-in log not found")

// UnavailableError กิจกรรมไม่เปิดให้เช็คอิน
type UnavailableError struct {
	ActivityID string
	Status     models.ActivityStatus
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("activity %s is not open for check-in (status %s)", e.ActivityID, e.Status)
}

// BuildCheckInLog ประกอบ log ใหม่; location เป็น nil ได้
func BuildCheckInLog(req models.CheckInRequest, activity models.CheckInActivity, location *models.CheckInLocation, now time.Time, id string) (models.CheckInLog, error) {
	if status := activities.ResolveStatus(activity, now); status != models.ActivityOpen {
		return models.CheckInLog{}, &UnavailableError{ActivityID: activity.ActivityID, Status: status}
	}

	entry := models.CheckInLog{
		CheckInID:    id,
		UserID:       req.UserID,
		UserName:     req.UserName,
		ActivityID:   activity.ActivityID,
		ActivityName: activity.Name,
		LocationName: "Unknown",
		Timestamp:    utils.FormatTimestamp(now),
		UserLat:      req.UserLat,
		UserLng:      req.UserLng,
		Comment:      req.Comment,
		PhotoURL:     req.PhotoURL,
		SurveyStatus: SurveyPending,
	}
	if location != nil {
		entry.LocationName = location.Name
		if hasCoords(location.Latitude, location.Longitude) && hasCoords(req.UserLat, req.UserLng) {
			d := math.Round(HaversineMeters(req.UserLat, req.UserLng, location.Latitude, location.Longitude))
			entry.Distance = &d
		}
	}
	return entry, nil
}

func hasCoords(lat, lng float64) bool {
	return lat != 0 || lng != 0
}

// Repository ที่มาของข้อมูลที่ Submit ต้องใช้
type Repository interface {
	GetActivity(ctx context.Context, activityID string) (*models.CheckInActivity, error)
	GetLocation(ctx context.Context, locationID string) (*models.CheckInLocation, error)
	ReserveSeat(ctx context.Context, activityID string, enforceCapacity bool) (bool, error)
	ReleaseSeat(ctx context.Context, activityID string) error
	InsertLog(ctx context.Context, entry models.CheckInLog) error
}

type mongoRepository struct{}

func (mongoRepository) GetActivity(ctx context.Context, activityID string) (*models.CheckInActivity, error) {
	return activities.GetActivity(ctx, activityID)
}

func (mongoRepository) GetLocation(ctx context.Context, locationID string) (*models.CheckInLocation, error) {
	return locations.GetLocation(ctx, locationID)
}

func (mongoRepository) ReserveSeat(ctx context.Context, activityID string, enforceCapacity bool) (bool, error) {
	return activities.ReserveSeat(ctx, activityID, enforceCapacity)
}

func (mongoRepository) ReleaseSeat(ctx context.Context, activityID string) error {
	return activities.ReleaseSeat(ctx, activityID)
}

func (mongoRepository) InsertLog(ctx context.Context, entry models.CheckInLog) error {
	_, err := DB.CheckInLogCollection.InsertOne(ctx, entry)
	return err
}

// Submit บันทึกการเช็คอินของผู้เข้าร่วม
func Submit(ctx context.Context, req models.CheckInRequest) (*models.CheckInLog, error) {
	return SubmitWith(ctx, mongoRepository{}, req, utils.NowBangkok(), uuid.NewString())
}

// SubmitWith ตรวจสถานะ จองที่นั่ง แล้วจึงบันทึก log
// ที่นั่งถูกจองด้วย update แบบมีเงื่อนไขก่อน insert จึงไม่เกิน capacity แม้มีคนเช็คอินพร้อมกัน
func SubmitWith(ctx context.Context, repo Repository, req models.CheckInRequest, now time.Time, id string) (*models.CheckInLog, error) {
	activity, err := repo.GetActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}

	var location *models.CheckInLocation
	if activity.LocationID != "" {
		location, err = repo.GetLocation(ctx, activity.LocationID)
		if err != nil && !errors.Is(err, locations.ErrLocationNotFound) {
			return nil, err
		}
	}

	entry, err := BuildCheckInLog(req, *activity, location, now, id)
	if err != nil {
		return nil, err
	}

	forcedOpen := activity.ManualOverride != nil && *activity.ManualOverride == models.OverrideOpen
	ok, err := repo.ReserveSeat(ctx, activity.ActivityID, !forcedOpen)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &UnavailableError{ActivityID: activity.ActivityID, Status: models.ActivityFull}
	}

	if err := repo.InsertLog(ctx, entry); err != nil {
		if rerr := repo.ReleaseSeat(ctx, activity.ActivityID); rerr != nil {
			log.Printf("⚠️ Failed to release seat for %s: %v", activity.ActivityID, rerr)
		}
		return nil, fmt.Errorf("failed to insert check-in log: %w", err)
	}

	log.Printf("✅ Check-in %s: user=%s activity=%s", entry.CheckInID, entry.UserID, entry.ActivityID)
	return &entry, nil
}

// DeleteCheckInLog ลบ log และลดจำนวนผู้เช็คอินของกิจกรรม
func DeleteCheckInLog(ctx context.Context, checkInID string) error {
	var entry models.CheckInLog
	err := DB.CheckInLogCollection.FindOneAndDelete(ctx, bson.M{"checkInId": checkInID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrCheckInNotFound
		}
		return fmt.Errorf("failed to delete check-in log: %w", err)
	}

	if err := activities.IncrementCount(ctx, entry.ActivityID, -1); err != nil {
		log.Printf("⚠️ Failed to decrement count for %s: %v", entry.ActivityID, err)
	}
	log.Printf("✅ Deleted check-in %s", checkInID)
	return nil
}
