package models

import (
	"time"
)

// Website represents a site the user signed up to with one of their email accounts
type Website struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	URL       string    `gorm:"column:url;size:500;not null" json:"url"`
	Username  string    `gorm:"size:150" json:"username"`
	EmailID   uint      `gorm:"index;not null" json:"email_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Submissions []Submission `gorm:"foreignKey:WebsiteID;constraint:OnDelete:CASCADE" json:"submissions,omitempty"`
}
