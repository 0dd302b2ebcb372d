package snapshot

import (
	"Backend-CheckIn-Passport/src/models"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Source แหล่งข้อมูลที่ store ดึงมาทั้งชุดทุกครั้งที่ refresh
type Source interface {
	GetCheckInLogs(ctx context.Context) ([]models.CheckInLog, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetAppData(ctx context.Context) (models.AppData, error)
}

// Snapshot ชุดข้อมูลที่ดึงมาแล้ว ห้ามแก้ไขหลังจาก publish
type Snapshot struct {
	Seq       uint64
	StoreID   string
	Logs      []models.CheckInLog
	Users     []models.User
	AppData   models.AppData
	FetchedAt time.Time
}

// ErrStale response ของ refresh ที่เก่ากว่าข้อมูลปัจจุบัน ถูกทิ้ง
var ErrStale = errors.New("stale snapshot discarded")

// Store เก็บ snapshot ล่าสุดไว้ในหน่วยความจำ
type Store struct {
	source  Source
	timeout time.Duration
	id      string
	group   singleflight.Group

	mu        sync.RWMutex
	current   *Snapshot
	scheduled uint64        // รอบล่าสุดที่มีคนขอ
	started   uint64        // รอบล่าสุดที่เริ่มดึงแล้ว
	lastDone  chan struct{} // ปิดเมื่อรอบ scheduled ดึงเสร็จ
	pending   func() (interface{}, error)
}

// NewStore สร้าง store ที่ยังไม่มีข้อมูล (Current คืน snapshot ว่าง)
func NewStore(source Source, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Store{source: source, timeout: timeout, id: uuid.NewString()}
}

// ID ระบุ store นี้ (สุ่มใหม่ทุกครั้งที่ start) ใช้ประกอบ key ของ cache ร่วมกับ Seq
func (s *Store) ID() string {
	return s.id
}

// Current snapshot ล่าสุด ไม่เคยคืน nil
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return &Snapshot{StoreID: s.id}
	}
	return s.current
}

// Refresh ดึงข้อมูลใหม่ทั้งชุด
// ดึงได้ครั้งละรอบเดียว คำขอที่เข้ามาระหว่างดึงจะรวมกันเป็นรอบถัดไปรอบเดียว
// ซึ่งเริ่มหลังรอบปัจจุบันเสร็จ จึงได้ข้อมูลที่ใหม่กว่าตอนที่ขอเสมอ
// ถ้าดึงไม่สำเร็จจะเก็บข้อมูลเดิมไว้; ctx ของผู้เรียกยกเลิกได้แค่การรอ ไม่ยกเลิกการดึง
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	if s.scheduled == s.started {
		// ไม่มีรอบที่รออยู่ สร้างรอบใหม่ต่อท้ายรอบที่กำลังดึง (ถ้ามี)
		s.scheduled++
		seq, prev, done := s.scheduled, s.lastDone, make(chan struct{})
		fetchCtx := context.WithoutCancel(ctx)
		s.lastDone = done
		s.pending = func() (interface{}, error) {
			defer close(done)
			if prev != nil {
				<-prev
			}
			return s.run(fetchCtx, seq)
		}
	}
	// รอบที่ยังไม่เริ่มยังอยู่ใน group เสมอ คนที่มาทีหลังจึง join รอบเดียวกัน
	ch := s.group.DoChan(groupKey(s.scheduled), s.pending)
	s.mu.Unlock()

	select {
	case res := <-ch:
		if res.Err != nil {
			return s.Current(), res.Err
		}
		return res.Val.(*Snapshot), nil
	case <-ctx.Done():
		return s.Current(), ctx.Err()
	}
}

func groupKey(seq uint64) string {
	return "refresh:" + strconv.FormatUint(seq, 10)
}

// run ดึงรอบ seq แล้ว publish
func (s *Store) run(ctx context.Context, seq uint64) (*Snapshot, error) {
	s.mu.Lock()
	s.started = seq
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snap, err := s.fetch(ctx, seq)
	if err != nil {
		log.Printf("⚠️ Snapshot refresh #%d failed, keeping previous data: %v", seq, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.Seq > seq {
		log.Printf("⚠️ Snapshot refresh #%d resolved after #%d, discarded", seq, s.current.Seq)
		return nil, ErrStale
	}
	s.current = snap
	log.Printf("✅ Snapshot #%d loaded: %d logs, %d users, %d activities",
		seq, len(snap.Logs), len(snap.Users), len(snap.AppData.Activities))
	return snap, nil
}

func (s *Store) fetch(ctx context.Context, seq uint64) (*Snapshot, error) {
	logs, err := s.source.GetCheckInLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch check-in logs: %w", err)
	}
	users, err := s.source.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	appData, err := s.source.GetAppData(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch app data: %w", err)
	}
	return &Snapshot{
		Seq:       seq,
		StoreID:   s.id,
		Logs:      logs,
		Users:     users,
		AppData:   appData,
		FetchedAt: time.Now(),
	}, nil
}
