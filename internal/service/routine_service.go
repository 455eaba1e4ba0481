package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/risewell/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrInvalidPeriod 在时段既非 morning 也非 evening 时返回
	ErrInvalidPeriod = errors.New("invalid routine period")
	// ErrEmptyStepName 在步骤名称为空白时返回
	ErrEmptyStepName = errors.New("step name is required")
	// ErrStepNameTooLong 在步骤名称超出长度上限时返回
	ErrStepNameTooLong = errors.New("step name too long")
)

// PeriodMorning / PeriodEvening 标识例行时段
const (
	PeriodMorning = "morning"
	PeriodEvening = "evening"
)

// 步骤名称长度上限（按字符计）
const maxStepNameLen = 200

// RoutineService 负责早晚例行步骤的增删查
// 步骤只归属创建它的用户，所有查询都带 user_id 条件
type RoutineService struct {
	db *gorm.DB
}

// NewRoutineService 构造 RoutineService
func NewRoutineService(gdb *gorm.DB) *RoutineService {
	return &RoutineService{db: gdb}
}

// AddStep 追加一条步骤，允许同名
func (s *RoutineService) AddStep(userID uint, period, name string) error {
	period, err := normalizePeriod(period)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStepName
	}
	if utf8.RuneCountInString(name) > maxStepNameLen {
		return ErrStepNameTooLong
	}

	step := db.RoutineStep{UserID: userID, Period: period, Name: name}
	if err := s.db.Create(&step).Error; err != nil {
		return fmt.Errorf("create step: %w", err)
	}
	return nil
}

// ListSteps 按插入顺序返回该用户在指定时段的全部步骤名称
func (s *RoutineService) ListSteps(userID uint, period string) ([]string, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}

	var steps []db.RoutineStep
	if err := s.db.Where("user_id = ? AND period = ?", userID, period).
		Order("id ASC").
		Find(&steps).Error; err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}

	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Name)
	}
	return names, nil
}

// DeleteStep 删除该用户该时段内名称完全匹配的全部步骤，无匹配时不算错误
func (s *RoutineService) DeleteStep(userID uint, period, name string) error {
	period, err := normalizePeriod(period)
	if err != nil {
		return err
	}

	if err := s.db.
		Where("user_id = ? AND period = ? AND name = ?", userID, period, strings.TrimSpace(name)).
		Delete(&db.RoutineStep{}).Error; err != nil {
		return fmt.Errorf("delete step: %w", err)
	}
	return nil
}

func normalizePeriod(period string) (string, error) {
	period = strings.TrimSpace(strings.ToLower(period))
	if period != PeriodMorning && period != PeriodEvening {
		return "", fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}
	return period, nil
}
