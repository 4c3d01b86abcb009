package comment

import (
	"blogapi/global"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (cm *Comment) CommentList(c *gin.Context) {
	var filter models.CommentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		global.Log.Error("c.ShouldBindQuery() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(filter); err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	filter.Normalize()
	// 匿名调用者默认只能看到已放行的评论
	filter.ApplyVisibility(middleware.GetClaims(c) == nil)

	comments, total, err := models.CommentList(filter)
	if err != nil {
		global.Log.Error("models.CommentList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询评论列表失败")
		return
	}

	res.SuccessWithPage(c, comments, total, filter.Page, filter.PageSize)
}
