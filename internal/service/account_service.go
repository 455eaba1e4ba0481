package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/risewell/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateUsername 在用户名已被占用时返回
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials 在用户名或密码错误时返回，不区分二者
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound 在指定用户不存在时返回
	ErrUserNotFound = errors.New("user not found")
)

// AccountService 负责账号注册、认证与凭据变更
type AccountService struct {
	db *gorm.DB
}

// NewAccountService 构造 AccountService
func NewAccountService(gdb *gorm.DB) *AccountService {
	return &AccountService{db: gdb}
}

// Register 创建新账号并返回用户，用户名重复时返回 ErrDuplicateUsername
func (s *AccountService) Register(username, password string) (*db.User, error) {
	username = strings.TrimSpace(username)

	var count int64
	if err := s.db.Model(&db.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	digest, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := db.User{Username: username, Password: digest}
	if err := s.db.Create(&user).Error; err != nil {
		// 并发注册时由唯一约束兜底
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// Authenticate 校验用户名与密码，两类失败统一返回 ErrInvalidCredentials
func (s *AccountService) Authenticate(username, password string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !verifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Get 根据 ID 获取用户
func (s *AccountService) Get(userID uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// ChangePassword 在校验旧密码后重新哈希并保存新密码
func (s *AccountService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.Get(userID)
	if err != nil {
		return err
	}

	if !verifyPassword(user.Password, oldPassword) {
		return ErrInvalidCredentials
	}

	digest, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.Model(user).Update("password", digest).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ChangeUsername 在校验密码后更新用户名，新用户名被他人占用时返回 ErrDuplicateUsername
func (s *AccountService) ChangeUsername(userID uint, newUsername, password string) error {
	newUsername = strings.TrimSpace(newUsername)

	user, err := s.Get(userID)
	if err != nil {
		return err
	}

	if !verifyPassword(user.Password, password) {
		return ErrInvalidCredentials
	}

	var count int64
	if err := s.db.Model(&db.User{}).
		Where("username = ? AND id <> ?", newUsername, userID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return ErrDuplicateUsername
	}

	if err := s.db.Model(user).Update("username", newUsername).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("update username: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
