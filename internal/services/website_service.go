package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/luo-one/organizer/internal/database/models"
	"gorm.io/gorm"
)

// ErrWebsiteNotFound indicates the website was not found
var ErrWebsiteNotFound = errors.New("website not found")

// WebsiteService handles website persistence
type WebsiteService struct {
	db         *gorm.DB
	logService *LogService
}

// NewWebsiteService creates a new WebsiteService instance
func NewWebsiteService(db *gorm.DB, logService *LogService) *WebsiteService {
	return &WebsiteService{
		db:         db,
		logService: logService,
	}
}

// CreateWebsiteInput represents the input for creating a website
type CreateWebsiteInput struct {
	Name     string
	URL      string
	Username string
	EmailID  uint
}

// Create stores a new website under an existing email account
func (s *WebsiteService) Create(ctx context.Context, input CreateWebsiteInput) (*models.Website, error) {
	name := strings.TrimSpace(input.Name)
	url := strings.TrimSpace(input.URL)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if url == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}
	if input.EmailID == 0 {
		return nil, fmt.Errorf("%w: email_id is required", ErrInvalidInput)
	}

	website := &models.Website{
		Name:     name,
		URL:      url,
		Username: strings.TrimSpace(input.Username),
		EmailID:  input.EmailID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getEmailAccount(tx, input.EmailID); err != nil {
			if errors.Is(err, ErrEmailAccountNotFound) {
				return fmt.Errorf("%w: email account %d", ErrForeignKeyViolation, input.EmailID)
			}
			return err
		}
		if err := translateWriteError(tx.Create(website).Error); err != nil {
			return err
		}
		return s.logService.Tx(tx).LogCreated(ctx, models.LogModuleWebsite, RecordDetails{ID: website.ID, Label: website.Name, ParentID: website.EmailID})
	})
	if err != nil {
		return nil, err
	}

	return website, nil
}

// GetByID retrieves a website by ID
func (s *WebsiteService) GetByID(ctx context.Context, id uint) (*models.Website, error) {
	return getWebsite(s.db.WithContext(ctx), id)
}

func getWebsite(tx *gorm.DB, id uint) (*models.Website, error) {
	var website models.Website
	if err := tx.First(&website, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}
	return &website, nil
}

// List returns every website ordered by ID
func (s *WebsiteService) List(ctx context.Context) ([]models.Website, error) {
	websites := []models.Website{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&websites).Error; err != nil {
		return nil, err
	}
	return websites, nil
}

// ListByEmailID returns the account and its websites ordered by ID.
// It fails with ErrEmailAccountNotFound when the account does not exist.
func (s *WebsiteService) ListByEmailID(ctx context.Context, emailID uint) (*models.EmailAccount, []models.Website, error) {
	var (
		account  *models.EmailAccount
		websites []models.Website
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = getEmailAccount(tx, emailID)
		if err != nil {
			return err
		}
		websites = []models.Website{}
		return tx.Where("email_id = ?", emailID).Order("id ASC").Find(&websites).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return account, websites, nil
}

// Delete removes a website and, through the store, its submissions.
// The deleted row is returned so callers can redirect to its account.
func (s *WebsiteService) Delete(ctx context.Context, id uint) (*models.Website, error) {
	var website *models.Website
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		website, err = getWebsite(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(website).Error; err != nil {
			return err
		}
		return s.logService.Tx(tx).LogDeleted(ctx, models.LogModuleWebsite, RecordDetails{ID: website.ID, Label: website.Name, ParentID: website.EmailID})
	})
	if err != nil {
		return nil, err
	}

	return website, nil
}

func countWebsites(tx *gorm.DB) (int64, error) {
	var total int64
	err := tx.Model(&models.Website{}).Count(&total).Error
	return total, err
}
