package router

import (
	"blogapi/api"
	"blogapi/middleware"
)

func (router RouterGroup) CommentRouter() {
	commentApi := api.AppGroupApp.CommentApi
	commentRouter := router.Group("comment")
	// 匿名可提交，登录身份解析失败时按匿名流程处理
	commentRouter.POST("", middleware.OptionalJwtAuth(), commentApi.CommentCreate)
	commentRouter.GET("list", middleware.OptionalJwtAuth(), commentApi.CommentList)
	commentRouter.PUT("", middleware.JwtAdmin(), commentApi.CommentUpdate)
	commentRouter.POST("delete", middleware.JwtAdmin(), commentApi.CommentDelete)
}
