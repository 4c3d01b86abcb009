package article

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (a *Article) ArticleDelete(c *gin.Context) {
	var req models.IDsRequest
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

	if err := models.ArticleDelete(req.IDs); err != nil {
		global.Log.Error("models.ArticleDelete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除文章失败")
		return
	}

	global.Log.Info("删除文章成功", zap.Uints("ids", req.IDs))
	res.Success(c, nil)
}
