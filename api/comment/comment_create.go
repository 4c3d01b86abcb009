package comment

import (
	"errors"

	"blogapi/global"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/service/captcha_ser"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Comment struct{}

type CommentCreateRequest struct {
	ArticleID   uint   `json:"article_id" validate:"required,gt=0"`
	ParentID    uint   `json:"parent_id" validate:"omitempty,gt=0"`
	Content     string `json:"content" validate:"required,min=1"`
	Nickname    string `json:"nickname" validate:"omitempty,max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

func (cm *Comment) CommentCreate(c *gin.Context) {
	var req CommentCreateRequest
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

	comment := &models.CommentModel{
		ArticleID: req.ArticleID,
		ParentID:  req.ParentID,
		Content:   req.Content,
		Nickname:  req.Nickname,
		Email:     req.Email,
	}

	// 验证码字段只参与校验，不落库
	claims := middleware.GetClaims(c)
	err := models.CommentCreate(comment, claims, captcha_ser.NewRedisStore(), req.CaptchaID, req.CaptchaCode)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCaptcha):
			res.Error(c, res.CaptchaError, err.Error())
		case errors.Is(err, models.ErrCaptchaExpired):
			res.Error(c, res.CaptchaExpired, err.Error())
		case errors.Is(err, models.ErrContentTooLong):
			res.Error(c, res.ContentTooLong, err.Error())
		case errors.Is(err, models.ErrParentCommentNotExist):
			res.Error(c, res.InvalidParameter, err.Error())
		default:
			global.Log.Error("models.CommentCreate() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "创建评论失败")
		}
		return
	}

	global.Log.Info("创建评论成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, comment)
}
