package database

import (
	"time"

	"github.com/luo-one/organizer/internal/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const startedAtKey = "organizer:started_at"

// MetricsPlugin times every statement gorm executes, feeds the duration into
// the DB histogram and warns on statements slower than the threshold.
type MetricsPlugin struct {
	logger        *zap.Logger
	slowThreshold time.Duration
}

// NewMetricsPlugin creates the plugin. A zero threshold disables slow warnings.
func NewMetricsPlugin(logger *zap.Logger, slowThreshold time.Duration) *MetricsPlugin {
	return &MetricsPlugin{
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

// Name implements gorm.Plugin
func (p *MetricsPlugin) Name() string {
	return "organizer:metrics"
}

// Initialize implements gorm.Plugin
func (p *MetricsPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().Before("gorm:create").Register("metrics:before_create", p.before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:after_create", p.after("create")); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("metrics:before_query", p.before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:after_query", p.after("query")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:before_update", p.before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:after_update", p.after("update")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", p.before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("metrics:after_delete", p.after("delete")); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("metrics:before_row", p.before); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("metrics:after_row", p.after("row")); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("metrics:before_raw", p.before); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("metrics:after_raw", p.after("raw"))
}

func (p *MetricsPlugin) before(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func (p *MetricsPlugin) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		startedAt, ok := v.(time.Time)
		if !ok {
			return
		}

		took := time.Since(startedAt)
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		metrics.RecordDBQueryDuration(operation, table, took)

		if p.slowThreshold > 0 && took > p.slowThreshold {
			sql := db.Statement.SQL.String()
			if len(sql) > 200 {
				sql = sql[:200] + "..."
			}
			p.logger.Warn("slow-query",
				zap.String("operation", operation),
				zap.String("table", table),
				zap.String("sql", sql),
				zap.Duration("took", took),
			)
		}
	}
}
