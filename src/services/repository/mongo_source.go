package repository

import (
	DB "Backend-CheckIn-Passport/src/database"
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/cache"
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const appDataCacheKey = "appdata"

// AppDataCacheTTL อายุ cache ของข้อมูลอ้างอิง
const AppDataCacheTTL = 5 * time.Minute

// ฟิลด์ที่อนุญาตให้เรียงลำดับ log
var logSortFields = map[string]bool{
	"timestamp":    true,
	"userName":     true,
	"activityName": true,
	"locationName": true,
}

// MongoSource อ่านข้อมูลทั้งหมดจาก MongoDB
type MongoSource struct {
	cache *cache.RedisCache
}

func NewMongoSource(c *cache.RedisCache) *MongoSource {
	return &MongoSource{cache: c}
}

// GetCheckInLogs log ทั้งหมดเรียงตามเวลา (เก่าไปใหม่)
func (s *MongoSource) GetCheckInLogs(ctx context.Context) ([]models.CheckInLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	return findAll[models.CheckInLog](ctx, DB.CheckInLogCollection, bson.M{}, opts)
}

// GetUserCheckInHistory ประวัติการเช็คอินของผู้ใช้ ล่าสุดก่อน
func (s *MongoSource) GetUserCheckInHistory(ctx context.Context, userID string) ([]models.CheckInLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return findAll[models.CheckInLog](ctx, DB.CheckInLogCollection, bson.M{"userId": userID}, opts)
}

// GetAllUsers ผู้ใช้ทั้งหมด
func (s *MongoSource) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, DB.UserCollection, bson.M{}, nil)
}

// GetAppData รวมข้อมูลอ้างอิงทั้งหมด ใช้ cache ถ้ามี Redis
func (s *MongoSource) GetAppData(ctx context.Context) (models.AppData, error) {
	var data models.AppData
	if ok, err := s.cache.GetJSON(ctx, appDataCacheKey, &data); err != nil {
		log.Printf("⚠️ %v", err)
	} else if ok {
		return data, nil
	}

	var err error
	if data.Activities, err = findAll[models.CheckInActivity](ctx, DB.ActivityCollection, bson.M{}, nil); err != nil {
		return data, fmt.Errorf("failed to load activities: %w", err)
	}
	if data.Locations, err = findAll[models.CheckInLocation](ctx, DB.LocationCollection, bson.M{}, nil); err != nil {
		return data, fmt.Errorf("failed to load locations: %w", err)
	}
	if data.Schools, err = findAll[models.School](ctx, DB.SchoolCollection, bson.M{}, nil); err != nil {
		return data, fmt.Errorf("failed to load schools: %w", err)
	}
	if data.Clusters, err = findAll[models.Cluster](ctx, DB.ClusterCollection, bson.M{}, nil); err != nil {
		return data, fmt.Errorf("failed to load clusters: %w", err)
	}
	missionOpts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if data.Missions, err = findAll[models.PassportMission](ctx, DB.MissionCollection, bson.M{}, missionOpts); err != nil {
		return data, fmt.Errorf("failed to load passport missions: %w", err)
	}

	if err := s.cache.SetJSON(ctx, appDataCacheKey, data, AppDataCacheTTL); err != nil {
		log.Printf("⚠️ %v", err)
	}
	return data, nil
}

// InvalidateAppData ล้าง cache หลังแก้ไขข้อมูลอ้างอิง
func (s *MongoSource) InvalidateAppData(ctx context.Context) {
	s.cache.Delete(ctx, appDataCacheKey)
}

// ListCheckInLogs log แบบแบ่งหน้า ค้นหาจากชื่อผู้ใช้/กิจกรรม/สถานที่
func (s *MongoSource) ListCheckInLogs(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()
	if !logSortFields[params.SortBy] {
		params.SortBy = "timestamp"
	}

	filter := bson.M{}
	if params.Search != "" {
		pattern := primitiveRegex(params.Search)
		filter["$or"] = bson.A{
			bson.M{"userName": pattern},
			bson.M{"activityName": pattern},
			bson.M{"locationName": pattern},
		}
	}

	total, err := DB.CheckInLogCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-in logs: %w", err)
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))
	logs, err := findAll[models.CheckInLog](ctx, DB.CheckInLogCollection, filter, opts)
	if err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(logs, total, params), nil
}

func primitiveRegex(search string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]T, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return out, nil
}
