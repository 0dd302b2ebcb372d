package testutil

import (
	"Backend-CheckIn-Passport/src/models"
	"context"
	"fmt"
	"testing"
	"time"
)

// TestTimer is a utility for measuring test execution time
type TestTimer struct {
	start time.Time
	name  string
}

// NewTestTimer creates a new test timer
func NewTestTimer(name string) *TestTimer {
	return &TestTimer{
		start: time.Now(),
		name:  name,
	}
}

// Stop stops the timer and prints the duration
func (t *TestTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, duration)
	return duration
}

// PerformanceAssertion checks if a test meets performance requirements
func PerformanceAssertion(t *testing.T, testName string, duration time.Duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("❌ %s performance test failed: took %v, expected less than %v", testName, duration, maxDuration)
	} else {
		t.Logf("✅ %s performance test passed: took %v (under %v limit)", testName, duration, maxDuration)
	}
}

// Log สร้าง CheckInLog สำหรับทดสอบ
func Log(userID, activityID, timestamp string) models.CheckInLog {
	return models.CheckInLog{
		CheckInID:    fmt.Sprintf("%s-%s-%s", userID, activityID, timestamp),
		UserID:       userID,
		UserName:     "name-" + userID,
		ActivityID:   activityID,
		ActivityName: "activity-" + activityID,
		Timestamp:    timestamp,
	}
}

// LogAt CheckInLog ที่ระบุสถานที่
func LogAt(userID, activityID, location, timestamp string) models.CheckInLog {
	l := Log(userID, activityID, timestamp)
	l.LocationName = location
	return l
}

// Activity กิจกรรมสำหรับทดสอบ
func Activity(id, name, locationID, category string, capacity int) models.CheckInActivity {
	return models.CheckInActivity{
		ActivityID: id,
		Name:       name,
		LocationID: locationID,
		Category:   category,
		Capacity:   capacity,
	}
}

// StaticSource แหล่งข้อมูลคงที่ ใช้แทน MongoDB ในการทดสอบ
type StaticSource struct {
	Logs    []models.CheckInLog
	Users   []models.User
	AppData models.AppData
	Err     error
}

func (s *StaticSource) GetCheckInLogs(ctx context.Context) ([]models.CheckInLog, error) {
	return s.Logs, s.Err
}

func (s *StaticSource) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Users, s.Err
}

func (s *StaticSource) GetAppData(ctx context.Context) (models.AppData, error) {
	return s.AppData, s.Err
}

// GetUserCheckInHistory log ของผู้ใช้ตามลำดับเดิม
func (s *StaticSource) GetUserCheckInHistory(ctx context.Context, userID string) ([]models.CheckInLog, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.CheckInLog
	for _, l := range s.Logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
