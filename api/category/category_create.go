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

type Category struct{}

type CategoryCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
	Sort        int    `json:"sort" validate:"omitempty,gte=0"`
}

func (ca *Category) CategoryCreate(c *gin.Context) {
	var req CategoryCreateRequest
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

	category := &models.CategoryModel{
		Name:        req.Name,
		Description: req.Description,
		Sort:        req.Sort,
	}
	if err := category.Create(); err != nil {
		global.Log.Error("category.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建分类失败")
		return
	}

	global.Log.Info("创建分类成功", zap.String("name", req.Name))
	res.Success(c, category)
}
