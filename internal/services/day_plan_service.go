package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/luo-one/organizer/internal/database/models"
	"gorm.io/gorm"
)

// ErrDayPlanNotFound indicates the day plan entry was not found
var ErrDayPlanNotFound = errors.New("day plan not found")

// DayPlanService handles the day planner
type DayPlanService struct {
	db         *gorm.DB
	logService *LogService
}

// NewDayPlanService creates a new DayPlanService instance
func NewDayPlanService(db *gorm.DB, logService *LogService) *DayPlanService {
	return &DayPlanService{
		db:         db,
		logService: logService,
	}
}

// CreateDayPlanInput represents the input for creating a day plan entry
type CreateDayPlanInput struct {
	Date        string // YYYY-MM-DD
	TaskTitle   string
	Description string
	StartTime   string // HH:MM, optional
	EndTime     string // HH:MM, optional
	Priority    string
	Category    string
}

// Create stores a new entry. Status always starts as pending.
func (s *DayPlanService) Create(ctx context.Context, input CreateDayPlanInput) (*models.DayPlan, error) {
	if strings.TrimSpace(input.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.TaskTitle)
	if title == "" {
		return nil, fmt.Errorf("%w: task_title is required", ErrInvalidInput)
	}
	startTime, err := parseClock("start_time", input.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseClock("end_time", input.EndTime)
	if err != nil {
		return nil, err
	}

	priority := strings.TrimSpace(input.Priority)
	if priority == "" {
		priority = string(models.PriorityMedium)
	}

	plan := &models.DayPlan{
		Date:        date.Format(models.DateLayout),
		TaskTitle:   title,
		Description: strings.TrimSpace(input.Description),
		StartTime:   startTime,
		EndTime:     endTime,
		Priority:    priority,
		Category:    strings.TrimSpace(input.Category),
		Status:      string(models.PlanPending),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogCreated(ctx, models.LogModuleDayPlan, RecordDetails{ID: plan.ID, Label: plan.TaskTitle})
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// GetByID retrieves a day plan entry by ID
func (s *DayPlanService) GetByID(ctx context.Context, id uint) (*models.DayPlan, error) {
	return getDayPlan(s.db.WithContext(ctx), id)
}

func getDayPlan(tx *gorm.DB, id uint) (*models.DayPlan, error) {
	var plan models.DayPlan
	if err := tx.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListByDate returns the entries of one date ordered by start time.
// Entries without a start time come last; ties keep creation order.
func (s *DayPlanService) ListByDate(ctx context.Context, date string) ([]models.DayPlan, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return listDayPlans(s.db.WithContext(ctx), parsed.Format(models.DateLayout))
}

func listDayPlans(tx *gorm.DB, date string) ([]models.DayPlan, error) {
	plans := []models.DayPlan{}
	err := tx.Where("date = ?", date).
		Order("start_time IS NULL").
		Order("start_time ASC").
		Order("id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// DayStats summarizes one day's entries
type DayStats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Pending      int `json:"pending"`
	HighPriority int `json:"high_priority"`
}

// ComputeDayStats counts entries by status and high priority
func ComputeDayStats(plans []models.DayPlan) DayStats {
	stats := DayStats{Total: len(plans)}
	for _, plan := range plans {
		switch models.PlanStatus(plan.Status) {
		case models.PlanCompleted:
			stats.Completed++
		case models.PlanPending:
			stats.Pending++
		}
		if plan.Priority == string(models.PriorityHigh) {
			stats.HighPriority++
		}
	}
	return stats
}

// UpdateStatus sets the status field and nothing else
func (s *DayPlanService) UpdateStatus(ctx context.Context, id uint, status string) error {
	status = strings.TrimSpace(status)
	if !models.PlanStatus(status).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := getDayPlan(tx, id)
		if err != nil {
			return err
		}
		oldStatus := plan.Status
		if err := tx.Model(plan).Update("status", status).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogStatusChanged(ctx, models.LogModuleDayPlan, id, oldStatus, status)
	})
}

// Delete removes an entry and returns it so callers know its date
func (s *DayPlanService) Delete(ctx context.Context, id uint) (*models.DayPlan, error) {
	var plan *models.DayPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = getDayPlan(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(plan).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogDeleted(ctx, models.LogModuleDayPlan, RecordDetails{ID: plan.ID, Label: plan.TaskTitle})
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}
