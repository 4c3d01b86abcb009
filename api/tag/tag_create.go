package tag

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Tag struct{}

type TagCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

func (t *Tag) TagCreate(c *gin.Context) {
	var req TagCreateRequest
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

	tag := &models.TagModel{Name: req.Name}
	if err := tag.Create(); err != nil {
		global.Log.Error("tag.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建标签失败")
		return
	}

	global.Log.Info("创建标签成功", zap.String("name", req.Name))
	res.Success(c, tag)
}
