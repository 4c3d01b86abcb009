package article

import (
	"errors"

	"blogapi/global"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/service/redis_ser"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *Article) ArticleDetail(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	anonymous := middleware.GetClaims(c) == nil
	article, err := models.ArticleGet(req.ID, anonymous)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrArticleNotVisible):
			res.Error(c, res.ArticleNotVisible, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			res.Error(c, res.NotFound, "文章不存在")
		default:
			global.Log.Error("models.ArticleGet() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "获取文章失败")
		}
		return
	}

	// 浏览计数走redis，定时刷回数据库
	if err := redis_ser.IncrArticleViewCount(article.ID, c.ClientIP()); err != nil {
		global.Log.Warn("redis_ser.IncrArticleViewCount() failed", zap.String("error", err.Error()))
	}

	res.Success(c, article)
}
