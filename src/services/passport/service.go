package passport

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/snapshot"
	"Backend-CheckIn-Passport/src/utils"
	"context"
	"errors"
	"fmt"
)

// ErrMissionNotFound ไม่มีภารกิจนี้ใน config
var ErrMissionNotFound = errors.New("mission not found")

// HistorySource ดึงประวัติการเช็คอินของผู้ใช้คนเดียว
type HistorySource interface {
	GetUserCheckInHistory(ctx context.Context, userID string) ([]models.CheckInLog, error)
}

// Service ประกอบประวัติผู้ใช้กับ config ภารกิจจาก snapshot
type Service struct {
	history HistorySource
	store   *snapshot.Store
}

func NewService(history HistorySource, store *snapshot.Store) *Service {
	return &Service{history: history, store: store}
}

// UserProgress ความคืบหน้าทุกภารกิจของผู้ใช้
func (s *Service) UserProgress(ctx context.Context, userID string) ([]models.MissionProgress, error) {
	logs, err := s.history.GetUserCheckInHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in history: %w", err)
	}
	snap := s.store.Current()
	return EvaluateAll(snap.AppData.Missions, logs, snap.AppData.Activities), nil
}

// MissionProgress ความคืบหน้าภารกิจเดียว
func (s *Service) MissionProgress(ctx context.Context, userID, missionID string) (*models.MissionProgress, error) {
	snap := s.store.Current()
	mission, ok := FindMission(snap.AppData.Missions, missionID)
	if !ok {
		return nil, ErrMissionNotFound
	}
	logs, err := s.history.GetUserCheckInHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in history: %w", err)
	}
	progress := EvaluateMission(mission, logs, snap.AppData.Activities)
	return &progress, nil
}

// ValidateMissions ตรวจ config ภารกิจก่อนใช้งาน ชนิดเงื่อนไขที่ไม่รู้จักถือเป็น error
func ValidateMissions(missions []models.PassportMission) error {
	seen := make(map[string]bool, len(missions))
	for i := range missions {
		m := &missions[i]
		if err := utils.ValidateStruct(m); err != nil {
			return fmt.Errorf("mission %q: %w", m.ID, err)
		}
		if seen[m.ID] {
			return fmt.Errorf("mission %q: duplicate id", m.ID)
		}
		seen[m.ID] = true
		for _, r := range m.Requirements {
			if !r.Type.Valid() {
				return fmt.Errorf("mission %q requirement %q: unknown type %q", m.ID, r.ID, r.Type)
			}
		}
	}
	return nil
}
