package system

import (
	"blogapi/global"
	"blogapi/models/res"

	"github.com/gin-gonic/gin"
)

// SiteInfo 站点信息，内容来自配置文件
func (s *System) SiteInfo(c *gin.Context) {
	res.Success(c, global.Config.Site)
}
