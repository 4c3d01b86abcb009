package tag

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (t *Tag) TagList(c *gin.Context) {
	tags, err := models.TagList()
	if err != nil {
		global.Log.Error("models.TagList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询标签列表失败")
		return
	}

	res.Success(c, tags)
}
