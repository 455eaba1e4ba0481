package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/risewell/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrEmptySentence 在每日一句为空白时返回
	ErrEmptySentence = errors.New("daily sentence is required")
	// ErrSentenceTooLong 在每日一句超出长度上限时返回
	ErrSentenceTooLong = errors.New("daily sentence too long")
)

// 每日一句长度上限（按字符计）
const maxSentenceLen = 2000

// MoodService 负责每日心情记录
// 同一用户同一天只保留一条，重复提交覆盖旧值
type MoodService struct {
	db *gorm.DB
}

// NewMoodService 构造 MoodService
func NewMoodService(gdb *gorm.DB) *MoodService {
	return &MoodService{db: gdb}
}

// SetToday 幂等写入当天的心情记录：已存在则覆盖心情与一句话，否则创建
func (s *MoodService) SetToday(userID uint, date time.Time, mood, sentence string) error {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return ErrEmptySentence
	}
	if utf8.RuneCountInString(sentence) > maxSentenceLen {
		return ErrSentenceTooLong
	}

	record := db.MoodRecord{
		UserID:    userID,
		EntryDate: normalizeToDate(date),
		Mood:      strings.TrimSpace(mood),
		Sentence:  sentence,
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood", "sentence", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("upsert mood record: %w", err)
	}
	return nil
}

// GetToday 返回指定日期的心情记录，不存在时返回 nil 而非错误
func (s *MoodService) GetToday(userID uint, date time.Time) (*db.MoodRecord, error) {
	var record db.MoodRecord
	if err := s.db.Where("user_id = ? AND entry_date = ?", userID, normalizeToDate(date)).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mood record: %w", err)
	}
	return &record, nil
}

// History 返回全部历史记录，按日期倒序
func (s *MoodService) History(userID uint) ([]db.MoodRecord, error) {
	var records []db.MoodRecord
	if err := s.db.Where("user_id = ?", userID).
		Order("entry_date DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list mood records: %w", err)
	}
	return records, nil
}

// normalizeToDate 丢弃时分秒，按自然日比较
func normalizeToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
