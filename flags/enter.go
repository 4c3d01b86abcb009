package flags

import (
	"os"

	"blogapi/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// NewFlags 解析命令行子命令
// 有子命令时执行完直接退出，不进入服务启动流程
func NewFlags() {
	var app = cli.NewApp()
	app.Name = "blogapi"
	app.Usage = "个人博客内容服务"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "创建用户",
			Action:  User,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "account",
					Aliases: []string{"a"},
					Usage:   "登录账号",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "nick_name",
					Aliases: []string{"n"},
					Usage:   "用户昵称",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "用户密码",
					Value:   "changeme123",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "用户角色 (admin/user)",
					Value:   "admin",
				},
			},
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)
	}
}
