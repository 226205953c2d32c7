package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luo-one/organizer/internal/database/models"
	"gorm.io/gorm"
)

// ErrSubmissionNotFound indicates the submission was not found
var ErrSubmissionNotFound = errors.New("submission not found")

// UpcomingLimit caps the dashboard's upcoming list
const UpcomingLimit = 10

// SubmissionFilter selects which submissions List returns
type SubmissionFilter int

const (
	// SubmissionFilterAll returns every submission
	SubmissionFilterAll SubmissionFilter = iota
	// SubmissionFilterUpcoming returns pending submissions due at or after now, at most UpcomingLimit
	SubmissionFilterUpcoming
	// SubmissionFilterOverdue returns pending submissions due before now
	SubmissionFilterOverdue
)

// SubmissionService handles submission persistence and deadline queries
type SubmissionService struct {
	db         *gorm.DB
	logService *LogService
	now        Clock
}

// NewSubmissionService creates a new SubmissionService instance
func NewSubmissionService(db *gorm.DB, logService *LogService) *SubmissionService {
	return &SubmissionService{
		db:         db,
		logService: logService,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for upcoming/overdue queries
func (s *SubmissionService) SetClock(clock Clock) {
	s.now = clock
}

// Now returns the service's current time
func (s *SubmissionService) Now() time.Time {
	return s.now()
}

// CreateSubmissionInput represents the input for creating a submission
type CreateSubmissionInput struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DDTHH:MM, local time
	WebsiteID   uint
}

// Create stores a new pending submission under an existing website
func (s *SubmissionService) Create(ctx context.Context, input CreateSubmissionInput) (*models.Submission, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.DueDate) == "" {
		return nil, fmt.Errorf("%w: due_date is required", ErrInvalidInput)
	}
	dueDate, err := ParseDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}
	if input.WebsiteID == 0 {
		return nil, fmt.Errorf("%w: website_id is required", ErrInvalidInput)
	}

	submission := &models.Submission{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     dueDate.UTC(),
		WebsiteID:   input.WebsiteID,
		Status:      string(models.SubmissionPending),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getWebsite(tx, input.WebsiteID); err != nil {
			if errors.Is(err, ErrWebsiteNotFound) {
				return fmt.Errorf("%w: website %d", ErrForeignKeyViolation, input.WebsiteID)
			}
			return err
		}
		if err := translateWriteError(tx.Create(submission).Error); err != nil {
			return err
		}
		return s.logService.Tx(tx).LogCreated(ctx, models.LogModuleSubmission, RecordDetails{ID: submission.ID, Label: submission.Title, ParentID: submission.WebsiteID})
	})
	if err != nil {
		return nil, err
	}

	return submission, nil
}

// GetByID retrieves a submission by ID
func (s *SubmissionService) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	return getSubmission(s.db.WithContext(ctx), id)
}

func getSubmission(tx *gorm.DB, id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := tx.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// List returns submissions matching filter, ascending by due date
func (s *SubmissionService) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	return listSubmissions(s.db.WithContext(ctx), filter, s.now())
}

func listSubmissions(tx *gorm.DB, filter SubmissionFilter, now time.Time) ([]models.Submission, error) {
	query := tx.Model(&models.Submission{})
	switch filter {
	case SubmissionFilterUpcoming:
		query = query.Where("status = ? AND due_date >= ?", string(models.SubmissionPending), now.UTC()).Limit(UpcomingLimit)
	case SubmissionFilterOverdue:
		query = query.Where("status = ? AND due_date < ?", string(models.SubmissionPending), now.UTC())
	}

	submissions := []models.Submission{}
	if err := query.Order("due_date ASC").Order("id ASC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// DueOn returns pending submissions due on the local calendar day of date
func (s *SubmissionService) DueOn(ctx context.Context, date time.Time) ([]models.Submission, error) {
	return submissionsDueOn(s.db.WithContext(ctx), date)
}

func submissionsDueOn(tx *gorm.DB, date time.Time) ([]models.Submission, error) {
	start, end := dayBounds(date)
	submissions := []models.Submission{}
	err := tx.Where("status = ? AND due_date >= ? AND due_date < ?", string(models.SubmissionPending), start, end).
		Order("due_date ASC").Order("id ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// UpdateStatus sets the status field and nothing else. Only persisted
// statuses are accepted; overdue is derived and rejected.
func (s *SubmissionService) UpdateStatus(ctx context.Context, id uint, status string) error {
	status = strings.TrimSpace(status)
	if !models.SubmissionStatus(status).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission, err := getSubmission(tx, id)
		if err != nil {
			return err
		}
		oldStatus := submission.Status
		if err := tx.Model(submission).Update("status", status).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogStatusChanged(ctx, models.LogModuleSubmission, id, oldStatus, status)
	})
}

// Delete removes a submission
func (s *SubmissionService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission, err := getSubmission(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(submission).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogDeleted(ctx, models.LogModuleSubmission, RecordDetails{ID: id, Label: submission.Title})
	})
}

// countPending returns the number of pending submissions, due or not
func countPending(tx *gorm.DB) (int64, error) {
	var total int64
	err := tx.Model(&models.Submission{}).Where("status = ?", string(models.SubmissionPending)).Count(&total).Error
	return total, err
}
