package article

import (
	"blogapi/global"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/models/ctypes"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Article struct{}

type ArticleCreateRequest struct {
	Title         string               `json:"title" validate:"required,min=1,max=200"`
	Summary       string               `json:"summary" validate:"omitempty,max=500"`
	Content       string               `json:"content" validate:"required,min=1"`
	CategoryID    *uint                `json:"category_id" validate:"omitempty,gt=0"`
	CoverImageURL string               `json:"cover_image_url" validate:"omitempty,max=255"`
	Status        ctypes.PublishStatus `json:"status" validate:"omitempty,oneof=draft published"`
	AllowComment  bool                 `json:"allow_comment"`
	Remark        string               `json:"remark" validate:"omitempty,max=500"`
	TagIDs        []uint               `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

func (a *Article) ArticleCreate(c *gin.Context) {
	var req ArticleCreateRequest
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

	claims := middleware.GetClaims(c)

	article := &models.ArticleModel{
		UserID:        claims.UserID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Status:        req.Status,
		AllowComment:  req.AllowComment,
		Remark:        req.Remark,
	}

	if err := models.ArticleCreate(article, req.TagIDs); err != nil {
		global.Log.Error("models.ArticleCreate() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建文章失败")
		return
	}

	global.Log.Info("创建文章成功", zap.Uint("id", article.ID), zap.String("title", article.Title))
	res.Success(c, article)
}
