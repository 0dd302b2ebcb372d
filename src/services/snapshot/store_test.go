package snapshot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedSource การดึงครั้งแรกค้างจนกว่าจะ release
type gatedSource struct {
	testutil.StaticSource
	calls   int32
	started chan struct{}
	release chan struct{}
}

func newGatedSource() *gatedSource {
	return &gatedSource{started: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSource) GetCheckInLogs(ctx context.Context) ([]models.CheckInLog, error) {
	n := atomic.AddInt32(&s.calls, 1)
	if n == 1 {
		close(s.started)
		<-s.release
	}
	return []models.CheckInLog{testutil.Log("u1", "a1", "2024-01-01T08:00:00")}, nil
}

// slowSource ใช้เวลาดึงคงที่และเคารพ ctx
type slowSource struct {
	testutil.StaticSource
	delay time.Duration
	calls int32
}

func (s *slowSource) GetCheckInLogs(ctx context.Context) ([]models.CheckInLog, error) {
	atomic.AddInt32(&s.calls, 1)
	select {
	case <-time.After(s.delay):
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestStoreEmptyBeforeRefresh(t *testing.T) {
	store := NewStore(&testutil.StaticSource{}, time.Second)

	snap := store.Current()
	require.NotNil(t, snap)
	assert.Equal(t, uint64(0), snap.Seq)
	assert.Empty(t, snap.Logs)
}

func TestStoreRefresh(t *testing.T) {
	src := &testutil.StaticSource{
		Logs:  []models.CheckInLog{testutil.Log("u1", "a1", "2024-01-01T08:00:00")},
		Users: []models.User{{UserID: "u1"}},
	}
	store := NewStore(src, time.Second)

	snap, err := store.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Seq)
	assert.Len(t, snap.Logs, 1)
	assert.Equal(t, store.ID(), snap.StoreID)
	assert.Same(t, snap, store.Current())
}

func TestStoreKeepsPreviousOnError(t *testing.T) {
	src := &testutil.StaticSource{Logs: []models.CheckInLog{testutil.Log("u1", "a1", "2024-01-01T08:00:00")}}
	store := NewStore(src, time.Second)
	first, err := store.Refresh(context.Background())
	require.NoError(t, err)

	src.Err = errors.New("backend down")
	snap, err := store.Refresh(context.Background())

	assert.Error(t, err)
	assert.Same(t, first, snap)
	assert.Same(t, first, store.Current())
}

func TestStoreCoalescesRefreshesDuringFetch(t *testing.T) {
	src := newGatedSource()
	store := NewStore(src, 5*time.Second)

	first := make(chan *Snapshot, 1)
	go func() {
		snap, _ := store.Refresh(context.Background())
		first <- snap
	}()
	<-src.started

	// สองคำขอระหว่างที่รอบแรกค้างอยู่ต้องได้รอบถัดไปรอบเดียวกัน
	var wg sync.WaitGroup
	later := make([]*Snapshot, 2)
	for i := range later {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := store.Refresh(context.Background())
			assert.NoError(t, err)
			later[i] = snap
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.Equal(t, uint64(1), (<-first).Seq)
	require.NotNil(t, later[0])
	assert.Equal(t, uint64(2), later[0].Seq)
	assert.Same(t, later[0], later[1])
	assert.Equal(t, int32(2), atomic.LoadInt32(&src.calls))
	assert.Equal(t, uint64(2), store.Current().Seq)
}

func TestStoreBurstOfRefreshes(t *testing.T) {
	src := &slowSource{delay: 50 * time.Millisecond}
	store := NewStore(src, 5*time.Second)

	// หนึ่งคำขอต่อ 10ms ต่อเนื่อง ~1 วินาที เหมือนมีคนเช็คอินถี่ ๆ
	var wg sync.WaitGroup
	var failed int32
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Refresh(context.Background()); err != nil {
				atomic.AddInt32(&failed, 1)
			}
		}()
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	calls := atomic.LoadInt32(&src.calls)
	assert.Equal(t, int32(0), atomic.LoadInt32(&failed))
	assert.GreaterOrEqual(t, calls, int32(2))
	assert.Less(t, calls, int32(50))
	assert.Equal(t, uint64(calls), store.Current().Seq)
}

func TestStoreCallerCancelDoesNotAbortFetch(t *testing.T) {
	src := newGatedSource()
	store := NewStore(src, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := store.Refresh(ctx)
		errCh <- err
	}()
	<-src.started
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("caller was not released after cancel")
	}

	close(src.release)
	assert.Eventually(t, func() bool { return store.Current().Seq == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestStoreRefreshAfterFailureStartsNewRound(t *testing.T) {
	src := &testutil.StaticSource{Err: errors.New("backend down")}
	store := NewStore(src, time.Second)

	_, err := store.Refresh(context.Background())
	require.Error(t, err)

	src.Err = nil
	snap, err := store.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Seq)
}
