package cron_ser

import (
	"blogapi/global"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronInit 初始化定时任务
func CronInit() {
	c := cron.New()

	// 每分钟把redis里的浏览计数刷回数据库
	_, err := c.AddFunc("@every 1m", FlushArticleViewCounts)
	if err != nil {
		global.Log.Error("注册浏览计数刷盘任务失败", zap.String("error", err.Error()))
		return
	}

	c.Start()
}
