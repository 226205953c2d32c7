package models

import (
	"time"
)

// ActivityLog records one change made through the organizer
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20;index" json:"level"` // DEBUG, INFO, WARN, ERROR
	Module    string    `gorm:"size:50;index" json:"module"`
	Action    string    `gorm:"size:100" json:"action"`
	Message   string    `gorm:"type:text" json:"message"`
	Details   string    `gorm:"type:text" json:"details"` // JSON string for additional details
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// LogLevel represents the log level
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// LogModule represents the part of the organizer that generated the log
type LogModule string

const (
	LogModuleEmail      LogModule = "email"
	LogModuleWebsite    LogModule = "website"
	LogModuleSubmission LogModule = "submission"
	LogModuleDayPlan    LogModule = "day_plan"
	LogModuleAPI        LogModule = "api"
	LogModuleCLI        LogModule = "cli"
)
