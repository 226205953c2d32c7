package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/luo-one/organizer/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrEmailAccountNotFound indicates the email account was not found
	ErrEmailAccountNotFound = errors.New("email account not found")
	// ErrEmailAccountExists indicates another account already uses the address
	ErrEmailAccountExists = errors.New("email account already exists")
)

// EmailAccountService handles email account persistence
type EmailAccountService struct {
	db         *gorm.DB
	logService *LogService
}

// NewEmailAccountService creates a new EmailAccountService instance
func NewEmailAccountService(db *gorm.DB, logService *LogService) *EmailAccountService {
	return &EmailAccountService{
		db:         db,
		logService: logService,
	}
}

// CreateEmailAccountInput represents the input for creating an email account
type CreateEmailAccountInput struct {
	Email   string
	Purpose string
}

// Create stores a new email account
func (s *EmailAccountService) Create(ctx context.Context, input CreateEmailAccountInput) (*models.EmailAccount, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	account := &models.EmailAccount{
		Email:   email,
		Purpose: strings.TrimSpace(input.Purpose),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.EmailAccount{}).Where("email = ?", email).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrEmailAccountExists
		}
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogCreated(ctx, models.LogModuleEmail, RecordDetails{ID: account.ID, Label: account.Email})
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailAccountExists
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetByID retrieves an email account by ID
func (s *EmailAccountService) GetByID(ctx context.Context, id uint) (*models.EmailAccount, error) {
	return getEmailAccount(s.db.WithContext(ctx), id)
}

func getEmailAccount(tx *gorm.DB, id uint) (*models.EmailAccount, error) {
	var account models.EmailAccount
	if err := tx.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// List returns every email account ordered by ID
func (s *EmailAccountService) List(ctx context.Context) ([]models.EmailAccount, error) {
	return listEmailAccounts(s.db.WithContext(ctx))
}

func listEmailAccounts(tx *gorm.DB) ([]models.EmailAccount, error) {
	accounts := []models.EmailAccount{}
	if err := tx.Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// EmailAccountSummary is an email account together with how many websites use it
type EmailAccountSummary struct {
	models.EmailAccount
	WebsiteCount int64 `json:"website_count"`
}

// ListSummaries returns every email account with its website count, ordered by ID
func (s *EmailAccountService) ListSummaries(ctx context.Context) ([]EmailAccountSummary, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var counts []struct {
		EmailID uint
		Total   int64
	}
	if err := s.db.WithContext(ctx).Model(&models.Website{}).
		Select("email_id, COUNT(*) AS total").
		Group("email_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	byAccount := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byAccount[c.EmailID] = c.Total
	}

	summaries := make([]EmailAccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, EmailAccountSummary{
			EmailAccount: account,
			WebsiteCount: byAccount[account.ID],
		})
	}
	return summaries, nil
}

// Delete removes an email account. The store cascades the delete to its
// websites and their submissions.
func (s *EmailAccountService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := getEmailAccount(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(account).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogDeleted(ctx, models.LogModuleEmail, RecordDetails{ID: id, Label: account.Email})
	})
}

func countEmailAccounts(tx *gorm.DB) (int64, error) {
	var total int64
	err := tx.Model(&models.EmailAccount{}).Count(&total).Error
	return total, err
}
