package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/risewell/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrEmptyEntry 在感恩内容为空白时返回
	ErrEmptyEntry = errors.New("gratitude entry is required")
	// ErrEntryTooLong 在感恩内容超出长度上限时返回
	ErrEntryTooLong = errors.New("gratitude entry too long")
)

// 感恩内容长度上限（按字符计）
const maxEntryLen = 2000

// GratitudeService 负责按天维护感恩条目
// 同一天允许多条，删除按日期加原文精确匹配
type GratitudeService struct {
	db *gorm.DB
}

// NewGratitudeService 构造 GratitudeService
func NewGratitudeService(gdb *gorm.DB) *GratitudeService {
	return &GratitudeService{db: gdb}
}

// AddEntry 追加一条指定日期的感恩条目，空白内容视为校验失败
func (s *GratitudeService) AddEntry(userID uint, date time.Time, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyEntry
	}
	if utf8.RuneCountInString(text) > maxEntryLen {
		return ErrEntryTooLong
	}

	entry := db.GratitudeEntry{UserID: userID, EntryDate: normalizeToDate(date), Text: text}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("create gratitude entry: %w", err)
	}
	return nil
}

// ListForDate 按插入顺序返回指定日期的条目内容
func (s *GratitudeService) ListForDate(userID uint, date time.Time) ([]string, error) {
	var entries []db.GratitudeEntry
	if err := s.db.Where("user_id = ? AND entry_date = ?", userID, normalizeToDate(date)).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list gratitude entries: %w", err)
	}

	texts := make([]string, 0, len(entries))
	for _, entry := range entries {
		texts = append(texts, entry.Text)
	}
	return texts, nil
}

// ListAll 返回全部历史条目，按日期倒序便于回顾
func (s *GratitudeService) ListAll(userID uint) ([]db.GratitudeEntry, error) {
	var entries []db.GratitudeEntry
	if err := s.db.Where("user_id = ?", userID).
		Order("entry_date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list all gratitude entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry 删除指定日期内容完全匹配的条目，无匹配时不算错误
func (s *GratitudeService) DeleteEntry(userID uint, date time.Time, text string) error {
	if err := s.db.
		Where("user_id = ? AND entry_date = ? AND text = ?", userID, normalizeToDate(date), strings.TrimSpace(text)).
		Delete(&db.GratitudeEntry{}).Error; err != nil {
		return fmt.Errorf("delete gratitude entry: %w", err)
	}
	return nil
}
