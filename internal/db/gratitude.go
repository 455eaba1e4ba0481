package db

import (
	"time"

	"gorm.io/gorm"
)

// GratitudeEntry 记录用户某一天的感恩条目
// 同一天允许多条，不做唯一约束；EntryDate 只保留日期部分
type GratitudeEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index:idx_gratitude_owner_date"`
	EntryDate time.Time `gorm:"index:idx_gratitude_owner_date"`
	Text      string    `gorm:"not null"`
}
