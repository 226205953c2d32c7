package models

import (
	"time"
)

// EmailAccount represents an email address the user registers websites under
type EmailAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:150;not null" json:"email"`
	Purpose   string    `gorm:"size:200" json:"purpose"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Websites []Website `gorm:"foreignKey:EmailID;constraint:OnDelete:CASCADE" json:"websites,omitempty"`
}
