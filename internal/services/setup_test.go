package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luo-one/organizer/internal/database"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	tempDir, err := os.MkdirTemp("", "organizer_services_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	db, err := database.Initialize(filepath.Join(tempDir, "test.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to open database: %v", err)
	}

	cleanup := func() {
		database.Close(db)
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

// testServices wires every service against one database
type testServices struct {
	logs        *LogService
	emails      *EmailAccountService
	websites    *WebsiteService
	submissions *SubmissionService
	plans       *DayPlanService
	dashboard   *DashboardService
	search      *SearchService
}

func newTestServices(db *gorm.DB, now time.Time) *testServices {
	logs := NewLogService(db, nil)
	svc := &testServices{
		logs:        logs,
		emails:      NewEmailAccountService(db, logs),
		websites:    NewWebsiteService(db, logs),
		submissions: NewSubmissionService(db, logs),
		plans:       NewDayPlanService(db, logs),
		dashboard:   NewDashboardService(db),
		search:      NewSearchService(db),
	}
	clock := func() time.Time { return now }
	svc.submissions.SetClock(clock)
	svc.dashboard.SetClock(clock)
	return svc
}

// fixedNow is the pinned "now" used across service tests
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

func dueIn(d time.Duration) string {
	return fixedNow.Add(d).Format("2006-01-02T15:04")
}
