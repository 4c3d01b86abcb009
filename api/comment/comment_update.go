package comment

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

type CommentUpdateRequest struct {
	ID      uint                    `json:"id" validate:"required,gt=0"`
	Content string                  `json:"content" validate:"required,min=1"`
	Status  ctypes.ModerationStatus `json:"status" validate:"omitempty,oneof=pending visible"`
}

func (cm *Comment) CommentUpdate(c *gin.Context) {
	var req CommentUpdateRequest
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

	if err := models.CommentUpdate(req.ID, req.Content, req.Status); err != nil {
		switch {
		case errors.Is(err, models.ErrContentTooLong):
			res.Error(c, res.ContentTooLong, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			res.Error(c, res.NotFound, "评论不存在")
		default:
			global.Log.Error("models.CommentUpdate() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "更新评论失败")
		}
		return
	}

	global.Log.Info("更新评论成功", zap.Uint("id", req.ID))
	res.SuccessWithMsg(c, nil, "更新评论成功")
}
