package models

import (
	"context"
	"time"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

// ImportLog records every import attempt with its outcome so operators
// can audit which file last touched a season.
type ImportLog struct {
	ID            int       `gorm:"primary_key" json:"id"`
	RecordType    string    `gorm:"index;size:20;not null" json:"record_type"`
	Seasons       string    `gorm:"size:255" json:"seasons"`
	FileName      string    `gorm:"size:255" json:"file_name"`
	SnapshotPath  string    `gorm:"size:512" json:"snapshot_path"`
	Added         int       `gorm:"default:0" json:"added"`
	Skipped       int       `gorm:"default:0" json:"skipped"`
	Deleted       int       `gorm:"default:0" json:"deleted"`
	ReplaceMode   bool      `gorm:"default:true" json:"replace_mode"`
	Success       bool      `gorm:"default:false" json:"success"`
	FailureKind   string    `gorm:"size:50" json:"failure_kind"`
	FailureDetail string    `gorm:"type:text" json:"failure_detail"`
	ImportedBy    string    `gorm:"size:100" json:"imported_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (entry *ImportLog) Save(ctx context.Context) error {
	return config.GetDB().WithContext(ctx).Create(entry).Error
}

// RecentImportLogs lists the latest import attempts, newest first.
func RecentImportLogs(ctx context.Context, limit int) ([]ImportLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var logs []ImportLog
	err := config.GetDB().WithContext(ctx).Model(&ImportLog{}).
		Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
