package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/luo-one/organizer/internal/database/models"
	"github.com/luo-one/organizer/internal/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LogService records the activity log and mirrors each entry to zap
type LogService struct {
	db       *gorm.DB
	logger   *zap.Logger
	logLevel models.LogLevel
}

// NewLogService creates a new LogService instance
func NewLogService(db *gorm.DB, logger *zap.Logger) *LogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogService{
		db:       db,
		logger:   logger,
		logLevel: models.LogLevelInfo,
	}
}

// NewLogServiceWithLevel creates a new LogService instance with specified log level
func NewLogServiceWithLevel(db *gorm.DB, logger *zap.Logger, level string) *LogService {
	s := NewLogService(db, logger)
	s.logLevel = parseLogLevel(level)
	return s
}

// parseLogLevel converts a string to LogLevel
func parseLogLevel(level string) models.LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return models.LogLevelDebug
	case "INFO":
		return models.LogLevelInfo
	case "WARN", "WARNING":
		return models.LogLevelWarn
	case "ERROR":
		return models.LogLevelError
	default:
		return models.LogLevelInfo
	}
}

// Tx returns a copy of s that writes through tx, so log rows commit or roll
// back with the caller's mutation
func (s *LogService) Tx(tx *gorm.DB) *LogService {
	scoped := *s
	scoped.db = tx
	return &scoped
}

// GetLogLevel returns the current log level
func (s *LogService) GetLogLevel() models.LogLevel {
	return s.logLevel
}

var levelPriority = map[models.LogLevel]int{
	models.LogLevelDebug: 0,
	models.LogLevelInfo:  1,
	models.LogLevelWarn:  2,
	models.LogLevelError: 3,
}

// shouldLog checks if a log entry should be recorded based on log level
func (s *LogService) shouldLog(level models.LogLevel) bool {
	return levelPriority[level] >= levelPriority[s.logLevel]
}

// LogEntry represents a log entry to be created
type LogEntry struct {
	Level   models.LogLevel
	Module  models.LogModule
	Action  string
	Message string
	Details interface{} // Will be serialized to JSON
}

// Log creates a new log entry
func (s *LogService) Log(ctx context.Context, entry LogEntry) error {
	if !s.shouldLog(entry.Level) {
		return nil
	}

	var detailsJSON string
	if entry.Details != nil {
		bytes, err := json.Marshal(entry.Details)
		if err != nil {
			detailsJSON = "{}"
		} else {
			detailsJSON = string(bytes)
		}
	}

	s.mirror(entry, detailsJSON)

	log := &models.ActivityLog{
		Level:   string(entry.Level),
		Module:  string(entry.Module),
		Action:  entry.Action,
		Message: entry.Message,
		Details: detailsJSON,
	}

	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		s.logger.Error("activity log write failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *LogService) mirror(entry LogEntry, detailsJSON string) {
	fields := []zap.Field{
		zap.String("module", string(entry.Module)),
		zap.String("action", entry.Action),
	}
	if detailsJSON != "" {
		fields = append(fields, zap.String("details", detailsJSON))
	}

	switch entry.Level {
	case models.LogLevelDebug:
		s.logger.Debug(entry.Message, fields...)
	case models.LogLevelWarn:
		s.logger.Warn(entry.Message, fields...)
	case models.LogLevelError:
		s.logger.Error(entry.Message, fields...)
	default:
		s.logger.Info(entry.Message, fields...)
	}
}

// LogInfo creates an INFO level log entry
func (s *LogService) LogInfo(ctx context.Context, module models.LogModule, action, message string, details interface{}) error {
	return s.Log(ctx, LogEntry{
		Level:   models.LogLevelInfo,
		Module:  module,
		Action:  action,
		Message: message,
		Details: details,
	})
}

// RecordDetails describes the record a mutation touched
type RecordDetails struct {
	ID       uint   `json:"id"`
	Label    string `json:"label,omitempty"`
	ParentID uint   `json:"parent_id,omitempty"`
	Field    string `json:"field,omitempty"`
	OldValue string `json:"old_value,omitempty"`
	NewValue string `json:"new_value,omitempty"`
}

// LogCreated logs a create event
func (s *LogService) LogCreated(ctx context.Context, module models.LogModule, details RecordDetails) error {
	metrics.IncrementMutation(string(module), "create")
	return s.LogInfo(ctx, module, "create", string(module)+" created", details)
}

// LogDeleted logs a delete event
func (s *LogService) LogDeleted(ctx context.Context, module models.LogModule, details RecordDetails) error {
	metrics.IncrementMutation(string(module), "delete")
	return s.LogInfo(ctx, module, "delete", string(module)+" deleted", details)
}

// LogStatusChanged logs a status change event
func (s *LogService) LogStatusChanged(ctx context.Context, module models.LogModule, id uint, oldStatus, newStatus string) error {
	metrics.IncrementMutation(string(module), "status_change")
	return s.LogInfo(ctx, module, "status_change", string(module)+" status changed", RecordDetails{
		ID:       id,
		Field:    "status",
		OldValue: oldStatus,
		NewValue: newStatus,
	})
}

// GetRecentLogs retrieves the most recent logs, newest first
func (s *LogService) GetRecentLogs(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}

	var logs []models.ActivityLog
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// GetLogsByModule retrieves logs for a specific module, newest first
func (s *LogService) GetLogsByModule(ctx context.Context, module models.LogModule, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}

	var logs []models.ActivityLog
	if err := s.db.WithContext(ctx).Where("module = ?", string(module)).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
