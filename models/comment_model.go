package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"blogapi/global"
	"blogapi/models/ctypes"
	"blogapi/utils"

	"github.com/mojocn/base64Captcha"
	"gorm.io/gorm"
)

// CommentModel 评论模型
type CommentModel struct {
	MODEL     `json:","`
	ArticleID uint                    `json:"article_id" gorm:"index:idx_article_parent"` // 关联的文章ID
	UserID    *uint                   `json:"user_id"`                                    // 评论用户ID，匿名评论为空
	Nickname  string                  `json:"nickname" gorm:"size:50"`                    // 展示昵称
	Email     string                  `json:"email" gorm:"size:100"`                      // 联系邮箱，可选
	Content   string                  `json:"content" gorm:"size:2000"`                   // 评论内容
	ParentID  uint                    `json:"parent_id" gorm:"index:idx_article_parent"`  // 父评论ID，0为顶级评论
	Status    ctypes.ModerationStatus `json:"status" gorm:"size:20;index"`                // 审核状态
}

func (CommentModel) TableName() string {
	return "comments"
}

// 评论纯文本最大长度
const commentContentMaxLen = 1000

var (
	ErrContentTooLong        = errors.New("评论内容不能超过1000字")
	ErrCaptcha               = errors.New("验证码错误")
	ErrCaptchaExpired        = errors.New("验证码已失效")
	ErrParentCommentNotExist = errors.New("父评论不存在")
)

// CommentFilter 评论列表过滤条件
type CommentFilter struct {
	PageInfo
	ArticleID      *uint                   `json:"article_id" form:"article_id"`
	ParentID       *uint                   `json:"parent_id" form:"parent_id"`
	Status         ctypes.ModerationStatus `json:"status" form:"status" validate:"omitempty,oneof=pending visible"`
	IncludeDeleted bool                    `json:"include_deleted" form:"include_deleted"`
}

// ApplyVisibility 按调用者身份收紧过滤条件
// 匿名调用者未显式指定状态时只能看到已放行的评论；显式传入的状态不被覆盖
func (f *CommentFilter) ApplyVisibility(anonymous bool) {
	if anonymous && f.Status == "" {
		f.Status = ctypes.ModerationVisible
	}
}

// CommentCreate 提交评论
// 登录用户直接放行并归属到本人；匿名用户按站点配置校验验证码后进入待审核。
// 验证码字段只在传输层使用，落库前一律丢弃。
func CommentCreate(comment *CommentModel, claims *utils.CustomClaims, store base64Captcha.Store, captchaID, captchaCode string) error {
	if claims != nil {
		userID := claims.UserID
		comment.UserID = &userID
		// 昵称为空时回退到账号
		nickname := strings.TrimSpace(claims.Nickname)
		if nickname == "" {
			nickname = claims.Account
		}
		comment.Nickname = nickname
		comment.Status = ctypes.ModerationVisible
	} else {
		// 匿名提交不信任请求里携带的用户字段
		comment.UserID = nil
		if global.Config.Captcha.Open {
			if err := validateCaptcha(store, captchaID, captchaCode); err != nil {
				return err
			}
		}
		comment.Status = ctypes.ModerationPending
	}

	content := strings.TrimSpace(comment.Content)
	if utf8.RuneCountInString(content) > commentContentMaxLen {
		return ErrContentTooLong
	}
	comment.Content = content
	comment.CreatedAt = ctypes.MyTime(time.Now())

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if comment.ParentID > 0 {
			if err := parentCommentExist(tx, comment.ParentID, comment.ArticleID); err != nil {
				return err
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}
		return nil
	})
}

// validateCaptcha 校验匿名评论验证码
// 取出即删除，保证同一correlation id只能用一次
func validateCaptcha(store base64Captcha.Store, captchaID, captchaCode string) error {
	if captchaID == "" || captchaCode == "" {
		return ErrCaptcha
	}
	stored := store.Get(captchaID, true)
	if stored == "" {
		return ErrCaptchaExpired
	}
	if !strings.EqualFold(stored, captchaCode) {
		return ErrCaptcha
	}
	return nil
}

// parentCommentExist 检查父评论是否存在且属于同一篇文章
func parentCommentExist(tx *gorm.DB, parentID uint, articleID uint) error {
	var count int64
	if err := tx.Model(&CommentModel{}).
		Where("id = ? AND article_id = ?", parentID, articleID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("检查父评论失败: %w", err)
	}
	if count == 0 {
		return ErrParentCommentNotExist
	}
	return nil
}

// CommentUpdate 管理员编辑评论
// 只做长度校验和字段更新，不重新走身份和验证码逻辑
func CommentUpdate(id uint, content string, status ctypes.ModerationStatus) error {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) > commentContentMaxLen {
		return ErrContentTooLong
	}

	updates := map[string]interface{}{
		"content":    content,
		"updated_at": time.Now(),
	}
	if status != "" {
		if !status.Valid() {
			return fmt.Errorf("无效的审核状态: %s", status)
		}
		updates["status"] = status
	}

	result := global.DB.Model(&CommentModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新评论失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CommentDelete 批量软删除评论，直接回复一并删除
func CommentDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id IN ? OR parent_id IN ?", ids, ids).
			Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("删除评论失败: %w", err)
		}
		return nil
	})
}

// CommentGet 按ID获取评论
func CommentGet(id uint) (*CommentModel, error) {
	var comment CommentModel
	if err := global.DB.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentList 查询评论列表
// 默认排除软删除行；显式传include_deleted时连同已删除行一起返回
func CommentList(filter CommentFilter) ([]CommentModel, int64, error) {
	filter.Normalize()

	db := global.DB
	if filter.IncludeDeleted {
		db = db.Unscoped()
	}

	query := db.Model(&CommentModel{})
	if filter.ArticleID != nil && *filter.ArticleID != 0 {
		query = query.Where("article_id = ?", *filter.ArticleID)
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计评论数量失败: %w", err)
	}

	var comments []CommentModel
	if err := query.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&comments).Error; err != nil {
		return nil, 0, fmt.Errorf("查询评论列表失败: %w", err)
	}

	return comments, total, nil
}
