package models

import (
	"errors"
	"fmt"
	"time"

	"blogapi/global"
	"blogapi/models/ctypes"

	"gorm.io/gorm"
)

// ArticleModel 文章模型
type ArticleModel struct {
	MODEL         `json:","`
	UserID        uint                 `json:"user_id"`                             // 作者ID
	CategoryID    *uint                `json:"category_id"`                         // 所属分类ID
	Title         string               `json:"title" gorm:"size:200"`               // 文章标题
	Summary       string               `json:"summary" gorm:"size:500"`             // 文章摘要
	Content       string               `json:"content" gorm:"type:longtext"`        // 文章内容
	CoverImageURL string               `json:"cover_image_url" gorm:"size:255"`     // 封面图地址
	Status        ctypes.PublishStatus `json:"status" gorm:"size:20;index"`         // 发布状态
	AllowComment  bool                 `json:"allow_comment" gorm:"default:true"`   // 是否允许评论
	ViewCount     uint                 `json:"view_count"`                          // 浏览量
	Remark        string               `json:"remark" gorm:"size:500"`              // 备注
	TagIDs        []uint               `json:"tag_ids" gorm:"-"`                    // 关联标签ID集合，单独查询填充
}

func (ArticleModel) TableName() string {
	return "articles"
}

var (
	ErrArticleNotVisible = errors.New("文章未发布或已删除")
	ErrInvalidStatus     = errors.New("无效的发布状态")
)

// ArticleFilter 文章列表过滤条件
type ArticleFilter struct {
	PageInfo
	Status         ctypes.PublishStatus `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
	CategoryID     *uint                `json:"category_id" form:"category_id"`
	TagID          *uint                `json:"tag_id" form:"tag_id"`
	UserID         *uint                `json:"user_id" form:"user_id"`
	IncludeDeleted bool                 `json:"include_deleted" form:"include_deleted"`
}

// ApplyVisibility 按调用者身份收紧过滤条件
// 匿名调用者未显式指定状态时只能看到已发布文章；显式传入的状态不被覆盖
func (f *ArticleFilter) ApplyVisibility(anonymous bool) {
	if anonymous && f.Status == "" {
		f.Status = ctypes.PublishPublished
	}
}

// ArticleCreate 创建文章并写入标签关联
// 文章行先落库拿到ID，再批量插入关联，整体在一个事务内
func ArticleCreate(article *ArticleModel, tagIDs []uint) error {
	if article.Status == "" {
		article.Status = ctypes.PublishDraft
	}
	if !article.Status.Valid() {
		return ErrInvalidStatus
	}
	article.CreatedAt = ctypes.MyTime(time.Now())

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return fmt.Errorf("创建文章失败: %w", err)
		}

		if err := insertArticleTags(tx, article.ID, tagIDs); err != nil {
			return err
		}

		article.TagIDs = tagIDs
		return nil
	})
}

// ArticleUpdate 更新文章并重建标签关联
// 先删除旧关联再批量插入新关联，事务保证失败时旧关联不丢失
func ArticleUpdate(article *ArticleModel, tagIDs []uint) error {
	if article.Status != "" && !article.Status.Valid() {
		return ErrInvalidStatus
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		// 文章必须存在且未删除，否则重建关联会留下孤儿行
		var exist ArticleModel
		if err := tx.Select("id").First(&exist, article.ID).Error; err != nil {
			return err
		}

		if err := tx.Where("article_id = ?", article.ID).
			Delete(&ArticleTagModel{}).Error; err != nil {
			return fmt.Errorf("删除文章标签关联失败: %w", err)
		}

		if err := insertArticleTags(tx, article.ID, tagIDs); err != nil {
			return err
		}

		if err := tx.Model(article).
			Updates(map[string]interface{}{
				"category_id":     article.CategoryID,
				"title":           article.Title,
				"summary":         article.Summary,
				"content":         article.Content,
				"cover_image_url": article.CoverImageURL,
				"status":          article.Status,
				"allow_comment":   article.AllowComment,
				"remark":          article.Remark,
				"updated_at":      time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("更新文章失败: %w", err)
		}

		return nil
	})
}

// ArticleDelete 批量删除文章
// 先清理标签关联，再软删除文章行，避免关联表残留孤儿记录
func ArticleDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id IN ?", ids).
			Delete(&ArticleTagModel{}).Error; err != nil {
			return fmt.Errorf("删除文章标签关联失败: %w", err)
		}

		if err := tx.Delete(&ArticleModel{}, ids).Error; err != nil {
			return fmt.Errorf("删除文章失败: %w", err)
		}

		return nil
	})
}

// ArticleGet 按ID获取文章，附带标签ID集合
// 匿名调用者只能看到已发布且未删除的文章，该检查不受过滤参数影响
func ArticleGet(id uint, anonymous bool) (*ArticleModel, error) {
	var article ArticleModel
	if err := global.DB.Unscoped().First(&article, id).Error; err != nil {
		return nil, err
	}

	if anonymous && (article.DeletedAt.Valid || article.Status != ctypes.PublishPublished) {
		return nil, ErrArticleNotVisible
	}

	tagIDs, err := SelectTagIDsByArticleID(global.DB, id)
	if err != nil {
		return nil, err
	}
	article.TagIDs = tagIDs

	return &article, nil
}

// ArticleList 查询文章列表
// 默认排除软删除行；显式传include_deleted时连同已删除行一起返回
func ArticleList(filter ArticleFilter) ([]ArticleModel, int64, error) {
	filter.Normalize()

	db := global.DB
	if filter.IncludeDeleted {
		db = db.Unscoped()
	}

	query := db.Model(&ArticleModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != nil && *filter.CategoryID != 0 {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil && *filter.UserID != 0 {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.TagID != nil && *filter.TagID != 0 {
		query = query.Where("id IN (?)", global.DB.Model(&ArticleTagModel{}).
			Select("article_id").Where("tag_id = ?", *filter.TagID))
	}
	if filter.Key != "" {
		like := "%" + filter.Key + "%"
		query = query.Where("title LIKE ? OR summary LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计文章数量失败: %w", err)
	}

	var articles []ArticleModel
	if err := query.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("查询文章列表失败: %w", err)
	}

	return articles, total, nil
}

// ArticleIncrViewCount 增加文章浏览量
func ArticleIncrViewCount(id uint, delta uint) error {
	return global.DB.Model(&ArticleModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).
		Error
}
