package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeRefreshSnapshot = "snapshot:refresh"

type RefreshSnapshotPayload struct {
	Reason      string `json:"reason"`
	RequestedBy string `json:"requested_by"`
}

func NewRefreshSnapshotTask(reason, requestedBy string) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshSnapshotPayload{Reason: reason, RequestedBy: requestedBy})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshSnapshot, payload), nil
}
