package main

import (
	"fmt"

	"blogapi/core"
	"blogapi/flags"
	"blogapi/global"
	"blogapi/router"
	"blogapi/service/cron_ser"

	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	core.InitConf()
	// 初始化日志
	global.Log = core.NewLogManager(&global.Config.Log)
	// 初始化数据库
	global.DB = core.InitGorm()
	// 初始化redis
	global.Redis = core.InitRedis()
	// 初始化命令行参数
	flags.NewFlags()
	// 初始化定时任务
	cron_ser.CronInit()
	// 初始化路由
	r := router.InitRouter()
	// 启动服务
	if err := r.Run(fmt.Sprintf("%s:%d", global.Config.System.Host, global.Config.System.Port)); err != nil {
		global.Log.Fatal("启动服务失败", zap.String("error", err.Error()))
	}
}
