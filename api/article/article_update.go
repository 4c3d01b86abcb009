package article

import (
	"errors"

	"blogapi/global"
	"blogapi/models"
	"blogapi/models/ctypes"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ArticleUpdateRequest struct {
	ID            uint                 `json:"id" validate:"required,gt=0"`
	Title         string               `json:"title" validate:"required,min=1,max=200"`
	Summary       string               `json:"summary" validate:"omitempty,max=500"`
	Content       string               `json:"content" validate:"required,min=1"`
	CategoryID    *uint                `json:"category_id" validate:"omitempty,gt=0"`
	CoverImageURL string               `json:"cover_image_url" validate:"omitempty,max=255"`
	Status        ctypes.PublishStatus `json:"status" validate:"required,oneof=draft published"`
	AllowComment  bool                 `json:"allow_comment"`
	Remark        string               `json:"remark" validate:"omitempty,max=500"`
	TagIDs        []uint               `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

func (a *Article) ArticleUpdate(c *gin.Context) {
	var req ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	article := &models.ArticleModel{
		MODEL:         models.MODEL{ID: req.ID},
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Status:        req.Status,
		AllowComment:  req.AllowComment,
		Remark:        req.Remark,
	}

	if err := models.ArticleUpdate(article, req.TagIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.Error(c, res.NotFound, "文章不存在")
			return
		}
		global.Log.Error("models.ArticleUpdate() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新文章失败")
		return
	}

	global.Log.Info("更新文章成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
