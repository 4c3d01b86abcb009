package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ArticleTagModel 文章标签关联，无独立主键
type ArticleTagModel struct {
	ArticleID uint `json:"article_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

func (ArticleTagModel) TableName() string {
	return "article_tags"
}

// insertArticleTags 批量写入文章标签关联
// 空标签集合合法，不产生任何关联行
func insertArticleTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]ArticleTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, ArticleTagModel{
			ArticleID: articleID,
			TagID:     tagID,
		})
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("批量写入文章标签关联失败: %w", err)
	}
	return nil
}

// SelectTagIDsByArticleID 查询文章关联的标签ID集合
func SelectTagIDsByArticleID(db *gorm.DB, articleID uint) ([]uint, error) {
	var tagIDs []uint
	if err := db.Model(&ArticleTagModel{}).
		Where("article_id = ?", articleID).
		Pluck("tag_id", &tagIDs).Error; err != nil {
		return nil, fmt.Errorf("查询文章标签关联失败: %w", err)
	}
	return tagIDs, nil
}
