package flags

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/models/ctypes"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func User(c *cli.Context) error {
	account := c.String("account")
	nickName := c.String("nick_name")
	password := c.String("password")
	role := c.String("role")

	userRole := ctypes.RoleUser
	if role == "admin" {
		userRole = ctypes.RoleAdmin
	}

	user := &models.UserModel{
		Account:  account,
		Nickname: nickName,
		Password: password,
		Role:     userRole,
	}

	if err := user.Create(); err != nil {
		global.Log.Error("用户创建失败", zap.String("error", err.Error()))
		return err
	}

	global.Log.Infof("用户%s创建成功,account:%s,role:%s", nickName, user.Account, string(userRole))
	return nil
}
