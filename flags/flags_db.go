package flags

import (
	"blogapi/global"
	"blogapi/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func DB(c *cli.Context) (err error) {
	err = global.DB.Set("gorm:table_options", "ENGINE=InnoDB").
		AutoMigrate(&models.UserModel{},
			&models.ArticleModel{},
			&models.ArticleTagModel{},
			&models.CommentModel{},
			&models.CategoryModel{},
			&models.TagModel{},
		)
	if err != nil {
		global.Log.Error("生成数据库表结构失败", zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("生成数据库表结构成功")
	return nil
}
