package category

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (ca *Category) CategoryList(c *gin.Context) {
	categories, err := models.CategoryList()
	if err != nil {
		global.Log.Error("models.CategoryList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询分类列表失败")
		return
	}

	res.Success(c, categories)
}
