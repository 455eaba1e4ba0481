package db

import "gorm.io/gorm"

// RoutineStep 定义了早晚例行步骤模型
// Period 仅取 morning/evening，一条步骤只属于一个用户的一个时段
// 允许同名步骤，按插入顺序展示
type RoutineStep struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_routine_owner_period"`
	Period string `gorm:"index:idx_routine_owner_period"`
	Name   string `gorm:"not null"`
}
