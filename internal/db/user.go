package db

import "gorm.io/gorm"

// User 定义了用户模型
// Password 存储 scrypt 摘要而非明文，用户名全局唯一
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}
