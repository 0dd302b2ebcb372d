package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ชื่อฐานข้อมูลตั้งต้น
const DefaultDBName = "CheckInPassportDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	CheckInLogCollection *mongo.Collection
	ActivityCollection   *mongo.Collection
	LocationCollection   *mongo.Collection
	SchoolCollection     *mongo.Collection
	ClusterCollection    *mongo.Collection
	UserCollection       *mongo.Collection
	MissionCollection    *mongo.Collection
)

// LoadEnv โหลดค่า Environment Variables จากไฟล์ .env (ถ้ามี)
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
}

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว แล้วผูก collection ทั้งหมด
func ConnectMongoDB() error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable not set")
	}

	once.Do(func() { // ✅ Run only once
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			connectErr = fmt.Errorf("failed to connect to MongoDB: %w", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			connectErr = fmt.Errorf("MongoDB ping failed: %w", connectErr)
			return
		}

		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = DefaultDBName
		}
		initCollections(dbName)
		if connectErr = EnsureIndexes(ctx); connectErr != nil {
			return
		}
		log.Printf("✅ MongoDB connected successfully (db=%s)", dbName)
	})

	return connectErr
}

func initCollections(dbName string) {
	CheckInLogCollection = GetCollection(dbName, "checkInLogs")
	ActivityCollection = GetCollection(dbName, "checkInActivities")
	LocationCollection = GetCollection(dbName, "checkInLocations")
	SchoolCollection = GetCollection(dbName, "schools")
	ClusterCollection = GetCollection(dbName, "clusters")
	UserCollection = GetCollection(dbName, "users")
	MissionCollection = GetCollection(dbName, "passportMissions")
}

// EnsureIndexes index ที่ query หลักต้องใช้
func EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{CheckInLogCollection, mongo.IndexModel{Keys: bson.D{{Key: "checkInId", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{CheckInLogCollection, mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}}},
		{ActivityCollection, mongo.IndexModel{Keys: bson.D{{Key: "activityId", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{LocationCollection, mongo.IndexModel{Keys: bson.D{{Key: "locationId", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{MissionCollection, mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}},
	}
	for _, ix := range indexes {
		if _, err := ix.coll.Indexes().CreateOne(ctx, ix.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", ix.coll.Name(), err)
		}
	}
	return nil
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

// DisconnectMongoDB ปิดการเชื่อมต่อตอน shutdown
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
