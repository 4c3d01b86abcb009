package category

import (
	"errors"

	"blogapi/global"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryUpdateRequest struct {
	ID          uint   `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
	Sort        int    `json:"sort" validate:"omitempty,gte=0"`
}

func (ca *Category) CategoryUpdate(c *gin.Context) {
	var req CategoryUpdateRequest
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
		MODEL:       models.MODEL{ID: req.ID},
		Name:        req.Name,
		Description: req.Description,
		Sort:        req.Sort,
	}
	if err := category.Update(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.Error(c, res.NotFound, "分类不存在")
			return
		}
		global.Log.Error("category.Update() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新分类失败")
		return
	}

	global.Log.Info("更新分类成功", zap.Uint("id", req.ID))
	res.SuccessWithMsg(c, nil, "更新分类成功")
}
