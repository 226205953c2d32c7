package services

import (
	"context"
	"strings"

	"github.com/luo-one/organizer/internal/database/models"
	"gorm.io/gorm"
)

// SearchService runs the free-text search across accounts, websites and submissions
type SearchService struct {
	db *gorm.DB
}

// NewSearchService creates a new SearchService instance
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// SearchResults holds matches grouped by entity type
type SearchResults struct {
	Query       string                `json:"query"`
	Emails      []models.EmailAccount `json:"emails"`
	Websites    []models.Website      `json:"websites"`
	Submissions []models.Submission   `json:"submissions"`
}

// Empty reports whether nothing matched
func (r *SearchResults) Empty() bool {
	return len(r.Emails) == 0 && len(r.Websites) == 0 && len(r.Submissions) == 0
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds an unanchored LIKE pattern with q's wildcards escaped.
// Case folding happens in SQL so both sides use the store's LOWER.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// Search matches q as a case-insensitive substring of EmailAccount.email and
// purpose, Website.name and url, and Submission.title and description. An
// empty query matches nothing.
func (s *SearchService) Search(ctx context.Context, q string) (*SearchResults, error) {
	results := &SearchResults{
		Query:       q,
		Emails:      []models.EmailAccount{},
		Websites:    []models.Website{},
		Submissions: []models.Submission{},
	}
	if strings.TrimSpace(q) == "" {
		return results, nil
	}

	pattern := likePattern(q)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(`LOWER(email) LIKE LOWER(?) ESCAPE '\' OR LOWER(purpose) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern).
			Order("id ASC").Find(&results.Emails).Error; err != nil {
			return err
		}
		if err := tx.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(url) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern).
			Order("id ASC").Find(&results.Websites).Error; err != nil {
			return err
		}
		return tx.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern).
			Order("id ASC").Find(&results.Submissions).Error
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
