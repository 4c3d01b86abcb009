package category

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (ca *Category) CategoryDelete(c *gin.Context) {
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

	if err := models.CategoryDelete(req.IDs); err != nil {
		global.Log.Error("models.CategoryDelete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除分类失败")
		return
	}

	global.Log.Info("删除分类成功", zap.Uints("ids", req.IDs))
	res.SuccessWithMsg(c, nil, "删除分类成功")
}
