package models

import (
	"fmt"

	"blogapi/global"

	"gorm.io/gorm"
)

// TagModel 标签模型
type TagModel struct {
	MODEL `json:","`
	Name  string `json:"name" gorm:"size:50;uniqueIndex:idx_tag_name,length:50"`
}

func (TagModel) TableName() string {
	return "tags"
}

// Create 创建标签
func (t *TagModel) Create() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("创建标签失败: %w", err)
		}
		return nil
	})
}

// TagDelete 批量删除标签，连同文章关联一起清理
func TagDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id IN ?", ids).
			Delete(&ArticleTagModel{}).Error; err != nil {
			return fmt.Errorf("删除标签关联失败: %w", err)
		}
		if err := tx.Delete(&TagModel{}, ids).Error; err != nil {
			return fmt.Errorf("删除标签失败: %w", err)
		}
		return nil
	})
}

// TagList 查询全部标签
func TagList() ([]TagModel, error) {
	var tags []TagModel
	if err := global.DB.Order("id ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("查询标签列表失败: %w", err)
	}
	return tags, nil
}
