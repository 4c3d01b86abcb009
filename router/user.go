package router

import (
	"blogapi/api"
)

func (router RouterGroup) UserRouter() {
	userRouter := router.Group("user")
	userApi := api.AppGroupApp.UserApi
	userRouter.POST("login", userApi.UserLogin)
}
