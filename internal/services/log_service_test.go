package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/luo-one/organizer/internal/database/models"
)

func TestLogService_RecordsMutations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	account, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "log@x.com"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if err := svc.emails.Delete(ctx, account.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	logs, err := svc.logs.GetRecentLogs(ctx, 10)
	if err != nil {
		t.Fatalf("GetRecentLogs() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d log rows, want 2", len(logs))
	}
	if logs[0].Action != "delete" || logs[1].Action != "create" {
		t.Errorf("actions = %q, %q; want newest first", logs[0].Action, logs[1].Action)
	}

	var details RecordDetails
	if err := json.Unmarshal([]byte(logs[1].Details), &details); err != nil {
		t.Fatalf("details not JSON: %v", err)
	}
	if details.ID != account.ID || details.Label != "log@x.com" {
		t.Errorf("details = %+v", details)
	}
}

func TestLogService_LevelFilter(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	logs := NewLogServiceWithLevel(db, nil, "warn")
	if logs.GetLogLevel() != models.LogLevelWarn {
		t.Fatalf("level = %q, want WARN", logs.GetLogLevel())
	}
	_ = logs.LogInfo(ctx, models.LogModuleCLI, "noop", "dropped", nil)
	_ = logs.Log(ctx, LogEntry{Level: models.LogLevelError, Module: models.LogModuleAPI, Action: "fail", Message: "kept"})

	rows, err := logs.GetLogsByModule(ctx, models.LogModuleAPI, 0)
	if err != nil {
		t.Fatalf("GetLogsByModule() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Message != "kept" {
		t.Errorf("rows = %+v", rows)
	}
	if rows, _ := logs.GetLogsByModule(ctx, models.LogModuleCLI, 0); len(rows) != 0 {
		t.Errorf("info entry should be filtered at WARN, got %d rows", len(rows))
	}
}

func TestLogService_RollsBackWithMutation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	if err := db.Migrator().DropTable(&models.ActivityLog{}); err != nil {
		t.Fatalf("drop activity log: %v", err)
	}

	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "orphan@x.com"}); err == nil {
		t.Fatal("Create() should fail when the activity log cannot be written")
	}

	var count int64
	if err := db.Model(&models.EmailAccount{}).Count(&count).Error; err != nil {
		t.Fatalf("count accounts: %v", err)
	}
	if count != 0 {
		t.Errorf("account persisted without its log row, count = %d", count)
	}
}

func TestFreeTextStoredAsTyped(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	account, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "text@x.com", Purpose: "  alerts for <weekly> digest & R&D "})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	site, err := svc.websites.Create(ctx, CreateWebsiteInput{Name: "Site", URL: "https://s", Username: "<me>", EmailID: account.ID})
	if err != nil {
		t.Fatalf("create website: %v", err)
	}
	sub, err := svc.submissions.Create(ctx, CreateSubmissionInput{Title: "Proof", Description: "if a<b and c>d", DueDate: dueIn(time.Hour), WebsiteID: site.ID})
	if err != nil {
		t.Fatalf("create submission: %v", err)
	}
	plan, err := svc.plans.Create(ctx, CreateDayPlanInput{Date: "2025-06-01", TaskTitle: "Read", Description: "<b>not bold</b>", Category: "a>b"})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	stored, err := svc.emails.GetByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	storedSite, _ := svc.websites.GetByID(ctx, site.ID)
	storedSub, _ := svc.submissions.GetByID(ctx, sub.ID)
	storedPlan, _ := svc.plans.GetByID(ctx, plan.ID)

	checks := map[string][2]string{
		"purpose":          {stored.Purpose, "alerts for <weekly> digest & R&D"},
		"username":         {storedSite.Username, "<me>"},
		"description":      {storedSub.Description, "if a<b and c>d"},
		"plan description": {storedPlan.Description, "<b>not bold</b>"},
		"category":         {storedPlan.Category, "a>b"},
	}
	for field, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", field, c[0], c[1])
		}
	}
}

func TestParseClock(t *testing.T) {
	if v, err := parseClock("start_time", ""); err != nil || v != nil {
		t.Errorf("empty clock = %v, %v; want nil, nil", v, err)
	}
	if v, err := parseClock("start_time", "9:05"); err != nil || v == nil || *v != "09:05" {
		t.Errorf("9:05 = %v, %v; want 09:05", v, err)
	}
	if _, err := parseClock("start_time", "25:00"); err == nil {
		t.Error("25:00 should be rejected")
	}
}

func TestDayBounds(t *testing.T) {
	start, end := dayBounds(fixedNow)
	if got := end.Sub(start); got.Hours() < 23 || got.Hours() > 25 {
		t.Errorf("day spans %v", got)
	}
	if !start.Equal(fixedNow.Add(-12 * time.Hour)) {
		t.Errorf("start = %v, want local midnight", start)
	}
}
