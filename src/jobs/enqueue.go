package jobs

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// RefreshCoalesceWindow คำขอ refresh ที่ซ้ำกันภายในช่วงนี้จะรวมเป็นงานเดียว
const RefreshCoalesceWindow = 10 * time.Second

// EnqueueRefresh ส่งงาน refresh เข้าคิว; queued=false เมื่อมีงานเดียวกันรออยู่แล้ว
func EnqueueRefresh(client *asynq.Client, reason, requestedBy string) (queued bool, err error) {
	task, err := NewRefreshSnapshotTask(reason, requestedBy)
	if err != nil {
		return false, fmt.Errorf("failed to create refresh task: %w", err)
	}

	info, err := client.Enqueue(task,
		asynq.Unique(RefreshCoalesceWindow),
		asynq.MaxRetry(0),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			log.Println("⚠️ Refresh already queued, skipping")
			return false, nil
		}
		return false, fmt.Errorf("failed to enqueue refresh task: %w", err)
	}
	log.Printf("✅ Queued snapshot refresh: id=%s reason=%s", info.ID, reason)
	return true, nil
}
