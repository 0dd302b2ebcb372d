package analytics

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/cache"
	"Backend-CheckIn-Passport/src/services/snapshot"
	"Backend-CheckIn-Passport/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *snapshot.Store) {
	t.Helper()
	reg := fixtureRegistries()
	src := &testutil.StaticSource{
		Logs:  fixtureLogs(),
		Users: reg.Users,
		AppData: models.AppData{
			Activities: reg.Activities,
			Locations:  reg.Locations,
			Schools:    reg.Schools,
		},
	}
	store := snapshot.NewStore(src, time.Second)
	return NewService(store, cache.NewRedisCache(nil, "analytics")), store
}

func TestServiceReport(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// ยังไม่ refresh ได้รายงานว่าง
	empty := svc.Report(ctx, models.AnalyticsFilter{})
	assert.Equal(t, uint64(0), empty.SnapshotSeq)
	assert.Equal(t, 0, empty.Overview.TotalCheckIns)

	_, err := store.Refresh(ctx)
	require.NoError(t, err)

	report := svc.Report(ctx, models.AnalyticsFilter{Cluster: "north"})
	assert.Equal(t, uint64(1), report.SnapshotSeq)
	assert.Equal(t, 3, report.Overview.TotalCheckIns)
	assert.Equal(t, models.FilterAll, report.Filter.Time)

	logs := svc.FilteredLogs(models.AnalyticsFilter{Time: models.TimeAfternoon})
	assert.Len(t, logs, 2)
}

func TestServicePrompt(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	_, err := store.Refresh(ctx)
	require.NoError(t, err)

	text, err := svc.Prompt(ctx, PromptSchool, models.AnalyticsFilter{}, fixedNow())
	require.NoError(t, err)
	assert.Contains(t, text, "โรงเรียนสอง")

	_, err = svc.Prompt(ctx, "bogus", models.AnalyticsFilter{}, fixedNow())
	assert.Error(t, err)
}

func fixedNow() time.Time {
	return time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
}

// memoryCache cache ร่วมกันระหว่างหลาย instance แทน Redis
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	c.mu.Lock()
	data, ok := c.items[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = data
	return nil
}

func TestServiceReportSharedCache(t *testing.T) {
	ctx := context.Background()
	shared := &memoryCache{items: map[string][]byte{}}
	reg := fixtureRegistries()
	appData := models.AppData{Activities: reg.Activities, Locations: reg.Locations, Schools: reg.Schools}

	// สอง instance (หรือก่อน/หลัง restart) ที่ seq เท่ากันแต่ข้อมูลต่างกัน
	storeA := snapshot.NewStore(&testutil.StaticSource{Logs: fixtureLogs(), Users: reg.Users, AppData: appData}, time.Second)
	storeB := snapshot.NewStore(&testutil.StaticSource{Logs: fixtureLogs()[:1], Users: reg.Users, AppData: appData}, time.Second)
	_, err := storeA.Refresh(ctx)
	require.NoError(t, err)
	_, err = storeB.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, storeA.Current().Seq, storeB.Current().Seq)

	svcA := NewService(storeA, shared)
	svcB := NewService(storeB, shared)

	reportA := svcA.Report(ctx, models.AnalyticsFilter{})
	reportB := svcB.Report(ctx, models.AnalyticsFilter{})

	assert.Equal(t, len(fixtureLogs()), reportA.Overview.TotalCheckIns)
	assert.Equal(t, 1, reportB.Overview.TotalCheckIns)
	assert.Len(t, shared.items, 2)

	// อ่านซ้ำต้องได้จาก cache ของตัวเอง
	again := svcB.Report(ctx, models.AnalyticsFilter{})
	assert.Equal(t, 1, again.Overview.TotalCheckIns)
	assert.Equal(t, reportB.SnapshotSeq, again.SnapshotSeq)
}
