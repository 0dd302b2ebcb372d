package jobs

import (
	"Backend-CheckIn-Passport/src/services/snapshot"
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/hibiken/asynq"
)

// Refresher ส่วนที่ worker ต้องใช้จาก snapshot store
type Refresher interface {
	Refresh(ctx context.Context) (*snapshot.Snapshot, error)
}

// HandleRefreshSnapshotTask สร้าง handler ที่ดึง snapshot ใหม่
func HandleRefreshSnapshotTask(store Refresher) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload RefreshSnapshotPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}

		log.Printf("🎯 Refresh snapshot (reason=%s, by=%s)", payload.Reason, payload.RequestedBy)
		if _, err := store.Refresh(ctx); err != nil {
			// มี refresh ที่ใหม่กว่าทำไปแล้ว ไม่ถือว่า error
			if errors.Is(err, snapshot.ErrStale) {
				return nil
			}
			return err
		}
		return nil
	}
}

// NewServeMux ผูก handler กับ task type
func NewServeMux(store Refresher) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRefreshSnapshot, HandleRefreshSnapshotTask(store))
	return mux
}

// StartWorker เริ่ม asynq server ใน process เดียวกับ API เพราะ snapshot อยู่ในหน่วยความจำ
func StartWorker(redisOpt asynq.RedisClientOpt, store Refresher) (*asynq.Server, error) {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Queues:      map[string]int{"default": 1},
	})
	if err := srv.Start(NewServeMux(store)); err != nil {
		return nil, err
	}
	log.Println("✅ Asynq worker started")
	return srv, nil
}
