package controllers

import (
	"Backend-CheckIn-Passport/src/jobs"
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/analytics"
	"Backend-CheckIn-Passport/src/services/passport"
	"Backend-CheckIn-Passport/src/services/snapshot"
	"context"
	"log"

	"github.com/hibiken/asynq"
)

// LogLister รายการ log แบบแบ่งหน้า
type LogLister interface {
	ListCheckInLogs(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error)
}

// AppDataInvalidator ล้าง cache ข้อมูลอ้างอิงหลังแก้ไข
type AppDataInvalidator interface {
	InvalidateAppData(ctx context.Context)
}

// Handler รวม dependency ของทุก controller
type Handler struct {
	Store       *snapshot.Store
	Poller      *snapshot.Poller
	Analytics   *analytics.Service
	Passport    *passport.Service
	History     passport.HistorySource
	Logs        LogLister
	Invalidator AppDataInvalidator
	Asynq       *asynq.Client // nil = refresh แบบ synchronous
	BaseURL     string
}

// afterMutation ล้าง cache และดึง snapshot ใหม่ให้หน้า admin เห็นข้อมูลล่าสุด
func (h *Handler) afterMutation(ctx context.Context) {
	if h.Invalidator != nil {
		h.Invalidator.InvalidateAppData(ctx)
	}
	if h.Store != nil {
		_, _ = h.Store.Refresh(ctx)
	}
}

// requestRefresh ขอ snapshot ใหม่โดยไม่ให้ผู้ใช้ต้องรอ
// มีคิวก็ส่งเข้าคิว (คำขอซ้ำในช่วง RefreshCoalesceWindow รวมเป็นงานเดียว)
// ไม่มีคิวก็ refresh เบื้องหลัง ซึ่ง Store รวมคำขอที่ซ้อนกันให้อยู่แล้ว
func (h *Handler) requestRefresh(reason, requestedBy string) {
	if h.Asynq != nil {
		if _, err := jobs.EnqueueRefresh(h.Asynq, reason, requestedBy); err != nil {
			log.Printf("⚠️ %v", err)
		}
		return
	}
	if h.Store != nil {
		go func() {
			_, _ = h.Store.Refresh(context.Background())
		}()
	}
}
