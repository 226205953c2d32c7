package services

import (
	"context"
	"testing"
	"time"
)

func TestDashboardService_Summary(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	// seeds one account and website; offsets in hours from fixedNow
	seedSubmissions(t, svc, []int{-30, -2, 1, 5, 48, -1}, []bool{false, false, false, true, false, true})
	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "second@x.com"}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	dashboard, err := svc.dashboard.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if got := dashboard.Stats; got.TotalEmails != 2 || got.TotalWebsites != 1 || got.PendingSubmissions != 4 || got.Overdue != 2 {
		t.Errorf("Stats = %+v, want emails=2 websites=1 pending=4 overdue=2", got)
	}
	if len(dashboard.Upcoming) != 2 {
		t.Fatalf("Upcoming has %d rows, want 2", len(dashboard.Upcoming))
	}
	if !dashboard.Upcoming[0].DueDate.Before(dashboard.Upcoming[1].DueDate) {
		t.Errorf("Upcoming not sorted ascending: %v", dashboard.Upcoming)
	}
	if len(dashboard.Overdue) != 2 || !dashboard.Overdue[0].DueDate.Before(dashboard.Overdue[1].DueDate) {
		t.Errorf("Overdue = %+v", dashboard.Overdue)
	}
	if len(dashboard.Emails) != 2 {
		t.Errorf("Emails has %d rows, want 2", len(dashboard.Emails))
	}
}

func TestDashboardService_UpcomingCapped(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)

	offsets := make([]int, 14)
	for i := range offsets {
		offsets[i] = 14 - i // created out of order
	}
	seedSubmissions(t, svc, offsets, nil)

	dashboard, err := svc.dashboard.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if len(dashboard.Upcoming) != UpcomingLimit {
		t.Fatalf("Upcoming has %d rows, want %d", len(dashboard.Upcoming), UpcomingLimit)
	}
	if want := fixedNow.Add(time.Hour); !dashboard.Upcoming[0].DueDate.Equal(want) {
		t.Errorf("first upcoming due %v, want %v", dashboard.Upcoming[0].DueDate, want)
	}
	if dashboard.Stats.PendingSubmissions != 14 {
		t.Errorf("pending = %d, want 14", dashboard.Stats.PendingSubmissions)
	}
}

func TestDashboardService_DayPlannerIncludesDueSubmissions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	// fixedNow is 2025-06-01 12:00 local
	seedSubmissions(t, svc, []int{2, 30, -3}, nil)
	if _, err := svc.plans.Create(ctx, CreateDayPlanInput{Date: "2025-06-01", TaskTitle: "Plan", Priority: "high"}); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	view, err := svc.dashboard.DayPlanner(ctx, svc.dashboard.Today())
	if err != nil {
		t.Fatalf("DayPlanner() error = %v", err)
	}
	if view.Date != "2025-06-01" {
		t.Errorf("Date = %q, want 2025-06-01", view.Date)
	}
	if len(view.SubmissionsDue) != 2 {
		t.Errorf("SubmissionsDue has %d rows, want 2", len(view.SubmissionsDue))
	}
	if view.Stats.HighPriority != 1 || view.Stats.Total != 1 {
		t.Errorf("Stats = %+v", view.Stats)
	}
}
