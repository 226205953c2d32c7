package models

import (
	"time"
)

// Layouts used for the string-typed date and time columns of DayPlan
const (
	DateLayout    = "2006-01-02"
	ClockLayout   = "15:04"
	DueDateLayout = "2006-01-02T15:04"
)

// DayPlan is a task scheduled on a single calendar date
type DayPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:10;not null;index:idx_day_plans_date_start,priority:1" json:"date"` // YYYY-MM-DD
	TaskTitle   string    `gorm:"size:300;not null" json:"task_title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   *string   `gorm:"size:5;index:idx_day_plans_date_start,priority:2" json:"start_time"` // HH:MM, nil when unscheduled
	EndTime     *string   `gorm:"size:5" json:"end_time"`
	Priority    string    `gorm:"size:50;default:'medium'" json:"priority"`
	Category    string    `gorm:"size:100" json:"category"`
	Status      string    `gorm:"size:50;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlanPriority represents the priority of a day plan entry
type PlanPriority string

const (
	PriorityHigh   PlanPriority = "high"
	PriorityMedium PlanPriority = "medium"
	PriorityLow    PlanPriority = "low"
)

// PlanStatus represents the status of a day plan entry
type PlanStatus string

const (
	PlanPending   PlanStatus = "pending"
	PlanCompleted PlanStatus = "completed"
	PlanCancelled PlanStatus = "cancelled"
)

// IsValid checks if the plan status is valid
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanPending, PlanCompleted, PlanCancelled:
		return true
	}
	return false
}
