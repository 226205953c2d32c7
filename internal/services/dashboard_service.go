package services

import (
	"context"
	"time"

	"github.com/luo-one/organizer/internal/database/models"
	"gorm.io/gorm"
)

// DashboardService builds the read-only views that combine several tables
type DashboardService struct {
	db  *gorm.DB
	now Clock
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		db:  db,
		now: time.Now,
	}
}

// SetClock replaces the time source used to split upcoming from overdue
func (s *DashboardService) SetClock(clock Clock) {
	s.now = clock
}

// Stats holds the dashboard counters
type Stats struct {
	TotalEmails        int64 `json:"total_emails"`
	TotalWebsites      int64 `json:"total_websites"`
	PendingSubmissions int64 `json:"pending_submissions"`
	Overdue            int64 `json:"overdue"`
}

// Dashboard is everything the home page shows
type Dashboard struct {
	Emails   []models.EmailAccount `json:"emails"`
	Upcoming []models.Submission   `json:"upcoming"`
	Overdue  []models.Submission   `json:"overdue"`
	Stats    Stats                 `json:"stats"`
	Now      time.Time             `json:"now"`
}

// Summary reads the dashboard in a single transaction. The overdue counter is
// the length of the overdue list, never a stored status.
func (s *DashboardService) Summary(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	dashboard := &Dashboard{Now: now}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if dashboard.Emails, err = listEmailAccounts(tx); err != nil {
			return err
		}
		if dashboard.Upcoming, err = listSubmissions(tx, SubmissionFilterUpcoming, now); err != nil {
			return err
		}
		if dashboard.Overdue, err = listSubmissions(tx, SubmissionFilterOverdue, now); err != nil {
			return err
		}
		if dashboard.Stats.TotalEmails, err = countEmailAccounts(tx); err != nil {
			return err
		}
		if dashboard.Stats.TotalWebsites, err = countWebsites(tx); err != nil {
			return err
		}
		if dashboard.Stats.PendingSubmissions, err = countPending(tx); err != nil {
			return err
		}
		dashboard.Stats.Overdue = int64(len(dashboard.Overdue))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}

// DayPlanner is everything the day planner page shows for one date
type DayPlanner struct {
	Date           string              `json:"date"`
	Tasks          []models.DayPlan    `json:"tasks"`
	Stats          DayStats            `json:"stats"`
	SubmissionsDue []models.Submission `json:"submissions_today"`
}

// DayPlanner reads one date's tasks, their stats and the pending submissions due that day
func (s *DashboardService) DayPlanner(ctx context.Context, date time.Time) (*DayPlanner, error) {
	view := &DayPlanner{Date: date.Format(models.DateLayout)}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if view.Tasks, err = listDayPlans(tx, view.Date); err != nil {
			return err
		}
		if view.SubmissionsDue, err = submissionsDueOn(tx, date); err != nil {
			return err
		}
		view.Stats = ComputeDayStats(view.Tasks)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Today returns local midnight of the current day
func (s *DashboardService) Today() time.Time {
	now := s.now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
