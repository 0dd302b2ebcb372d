package snapshot

import (
	"context"
	"log"
	"sync"
	"time"
)

// PollInterval รอบการดึงข้อมูลอัตโนมัติ
const PollInterval = 30 * time.Second

// Poller ดึงข้อมูลใหม่เป็นรอบ ๆ เมื่อแอดมินเปิดใช้งาน
type Poller struct {
	store    *Store
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(store *Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = PollInterval
	}
	return &Poller{store: store, interval: interval}
}

// Enabled บอกว่ากำลัง poll อยู่หรือไม่
func (p *Poller) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Start เริ่ม poll (เรียกซ้ำได้)
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.loop(ctx, p.done)
	log.Printf("✅ Snapshot polling started (every %s)", p.interval)
}

// Stop หยุด poll และรอให้ goroutine จบ
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Println("✅ Snapshot polling stopped")
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// ถ้า error store จะเก็บข้อมูลเดิมไว้ รอรอบถัดไป
			_, _ = p.store.Refresh(ctx)
		}
	}
}
