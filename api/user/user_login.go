package user

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type User struct{}

type UserLoginRequest struct {
	Account  string `json:"account" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

func (u *User) UserLogin(c *gin.Context) {
	var req UserLoginRequest
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

	var user models.UserModel
	if err := user.FindByAccount(req.Account); err != nil {
		res.Error(c, res.UserNotFound, "用户名或密码错误")
		return
	}

	if !user.ValidatePassword(req.Password) {
		res.Error(c, res.PasswordError, "用户名或密码错误")
		return
	}

	token, err := utils.GenerateToken(utils.PayLoad{
		Account:  user.Account,
		Nickname: user.Nickname,
		Role:     user.Role,
		UserID:   user.ID,
	})
	if err != nil {
		global.Log.Error("utils.GenerateToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成token失败")
		return
	}

	global.Log.Info("用户登录成功", zap.String("account", user.Account))
	res.Success(c, gin.H{"token": token})
}
