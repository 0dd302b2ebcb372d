package passport

import (
	DB "Backend-CheckIn-Passport/src/database"
	"Backend-CheckIn-Passport/src/models"
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveMissions แทนที่ config ภารกิจทั้งชุด; ผู้เรียกต้องผ่าน ValidateMissions มาก่อน
func SaveMissions(ctx context.Context, missions []models.PassportMission) error {
	writes := make([]mongo.WriteModel, 0, len(missions)+1)
	ids := make([]string, 0, len(missions))
	for _, m := range missions {
		ids = append(ids, m.ID)
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": m.ID}).
			SetReplacement(m).
			SetUpsert(true))
	}
	writes = append(writes, mongo.NewDeleteManyModel().SetFilter(bson.M{"id": bson.M{"$nin": ids}}))

	if _, err := DB.MissionCollection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to save passport missions: %w", err)
	}
	log.Printf("✅ Saved %d passport missions", len(missions))
	return nil
}
