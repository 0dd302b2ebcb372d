package analytics

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/snapshot"
	"context"
	"fmt"
	"log"
	"time"
)

// ReportCacheTTL อายุ cache ของรายงาน (เท่ารอบ poll)
const ReportCacheTTL = snapshot.PollInterval

// ReportCache ที่เก็บรายงานที่คำนวณแล้ว (*cache.RedisCache)
type ReportCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// Service คำนวณรายงานจาก snapshot ปัจจุบัน
type Service struct {
	store *snapshot.Store
	cache ReportCache
}

func NewService(store *snapshot.Store, c ReportCache) *Service {
	return &Service{store: store, cache: c}
}

// reportCacheKey seq เริ่มใหม่ทุกครั้งที่ process เริ่ม จึงต้องมี StoreID นำหน้า
// ไม่งั้นหลาย instance หรือหลัง restart จะได้รายงานของ snapshot อื่นที่ seq ตรงกัน
func reportCacheKey(snap *snapshot.Snapshot, f models.AnalyticsFilter) string {
	return fmt.Sprintf("report:%s:%d:%s:%s", snap.StoreID, snap.Seq, f.Cluster, f.Time)
}

// Report รายงานของ snapshot ปัจจุบัน ใช้ cache ได้เพราะ key ผูกกับ snapshot
func (s *Service) Report(ctx context.Context, filter models.AnalyticsFilter) models.AnalyticsReport {
	snap := s.store.Current()
	key := reportCacheKey(snap, normalizeFilter(filter))

	var cached models.AnalyticsReport
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		log.Printf("⚠️ %v", err)
	} else if ok {
		return cached
	}

	report := BuildSnapshotReport(snap, filter)
	if snap.Seq > 0 {
		if err := s.cache.SetJSON(ctx, key, report, ReportCacheTTL); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}
	return report
}

// Prompt ข้อความสรุปภาษาไทยของรายงาน
func (s *Service) Prompt(ctx context.Context, kind string, filter models.AnalyticsFilter, now time.Time) (string, error) {
	return BuildPrompt(kind, s.Report(ctx, filter), now)
}

// FilteredLogs log ของ snapshot ปัจจุบันที่ผ่านตัวกรอง (ใช้ตอน export)
func (s *Service) FilteredLogs(filter models.AnalyticsFilter) []models.CheckInLog {
	snap := s.store.Current()
	return FilterLogs(snap.Logs, filter, RegistriesFrom(snap))
}
