package models

import (
	"time"
)

// Submission is a deadline tracked against a website
type Submission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:300;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"index;not null" json:"due_date"`
	WebsiteID   uint      `gorm:"index;not null" json:"website_id"`
	Status      string    `gorm:"size:50;index;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmissionStatus represents the persisted status of a submission
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionCompleted SubmissionStatus = "completed"
	// SubmissionOverdue is only ever derived at read time (pending and past due),
	// it is never written to the table.
	SubmissionOverdue SubmissionStatus = "overdue"
)

// IsValid reports whether s may be persisted
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionPending, SubmissionCompleted:
		return true
	}
	return false
}

// IsOverdue reports whether the submission is pending and past due at now
func (s *Submission) IsOverdue(now time.Time) bool {
	return s.Status == string(SubmissionPending) && s.DueDate.Before(now)
}
