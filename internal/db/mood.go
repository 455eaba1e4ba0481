package db

import (
	"time"

	"gorm.io/gorm"
)

// MoodRecord 记录用户某一天的心情与一句话
// UserID + EntryDate 采用唯一索引，保证幂等；重复提交走 upsert
type MoodRecord struct {
	gorm.Model
	UserID    uint      `gorm:"index;index:idx_mood_owner_date,unique"`
	EntryDate time.Time `gorm:"index:idx_mood_owner_date,unique"`
	Mood      string
	Sentence  string `gorm:"not null"`
}

// TableName 重写确保唯一索引作用到 user_id + entry_date
func (MoodRecord) TableName() string {
	return "mood_records"
}
