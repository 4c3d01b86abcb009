package models

import (
	"errors"
	"fmt"

	"blogapi/global"
	"blogapi/models/ctypes"
	"blogapi/utils"

	"gorm.io/gorm"
)

// UserModel 用户模型
// 完整的账号体系不在本服务范围内，这里只承载登录发token所需的最小字段
type UserModel struct {
	MODEL    `json:","`
	Nickname string          `json:"nickname" gorm:"column:nick_name;size:50"`
	Account  string          `json:"account" gorm:"uniqueIndex:idx_account,length:191"`
	Password string          `json:"-"`
	Email    string          `json:"email" gorm:"size:100"`
	Role     ctypes.UserRole `json:"role" gorm:"size:20"`
}

func (UserModel) TableName() string {
	return "users"
}

// Create 创建用户
func (u *UserModel) Create() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&UserModel{}).
			Where("account = ?", u.Account).
			Count(&count).Error; err != nil {
			return fmt.Errorf("检查用户存在性失败: %w", err)
		}
		if count > 0 {
			return errors.New("账号已存在")
		}

		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("密码处理失败: %w", err)
		}
		u.Password = hashedPassword

		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}
		return nil
	})
}

// FindByAccount 根据账号查找用户
func (u *UserModel) FindByAccount(account string) error {
	return global.DB.Where("account = ?", account).Take(u).Error
}

// ValidatePassword 验证密码
func (u *UserModel) ValidatePassword(password string) bool {
	return utils.CheckPassword(u.Password, password)
}

// IsAdmin 检查是否为管理员
func (u *UserModel) IsAdmin() bool {
	return u.Role == ctypes.RoleAdmin
}
