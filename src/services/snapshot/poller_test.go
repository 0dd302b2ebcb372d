package snapshot

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"Backend-CheckIn-Passport/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls int32
}

func (s *countingSource) GetCheckInLogs(ctx context.Context) ([]models.CheckInLog, error) {
	atomic.AddInt32(&s.calls, 1)
	return nil, nil
}

func (s *countingSource) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *countingSource) GetAppData(ctx context.Context) (models.AppData, error) {
	return models.AppData{}, nil
}

func TestPollerStartStop(t *testing.T) {
	src := &countingSource{}
	store := NewStore(src, time.Second)
	poller := NewPoller(store, 10*time.Millisecond)

	assert.False(t, poller.Enabled())
	poller.Start(context.Background())
	poller.Start(context.Background()) // เรียกซ้ำไม่สร้าง goroutine เพิ่ม
	assert.True(t, poller.Enabled())

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&src.calls) >= 2
	}, 2*time.Second, 5*time.Millisecond)

	poller.Stop()
	assert.False(t, poller.Enabled())

	after := atomic.LoadInt32(&src.calls)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&src.calls))

	poller.Stop() // หยุดซ้ำได้
}

func TestPollerDefaultInterval(t *testing.T) {
	poller := NewPoller(NewStore(&countingSource{}, time.Second), 0)
	assert.Equal(t, PollInterval, poller.interval)
	assert.Equal(t, 30*time.Second, PollInterval)
}
