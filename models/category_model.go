package models

import (
	"fmt"
	"time"

	"blogapi/global"

	"gorm.io/gorm"
)

// CategoryModel 分类模型
type CategoryModel struct {
	MODEL       `json:","`
	Name        string `json:"name" gorm:"size:50"`
	Description string `json:"description" gorm:"size:200"`
	Sort        int    `json:"sort"` // 展示排序，小的在前
}

func (CategoryModel) TableName() string {
	return "categories"
}

// Create 创建分类
func (c *CategoryModel) Create() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("创建分类失败: %w", err)
		}
		return nil
	})
}

// Update 更新分类
func (c *CategoryModel) Update() error {
	result := global.DB.Model(c).Updates(map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"sort":        c.Sort,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("更新分类失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CategoryDelete 批量删除分类
// 被文章引用的分类不做级联处理，文章侧保留原分类ID
func CategoryDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&CategoryModel{}, ids).Error; err != nil {
			return fmt.Errorf("删除分类失败: %w", err)
		}
		return nil
	})
}

// CategoryList 查询全部分类，按排序值升序
func CategoryList() ([]CategoryModel, error) {
	var categories []CategoryModel
	if err := global.DB.Order("sort ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	return categories, nil
}
