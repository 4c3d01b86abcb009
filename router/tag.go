package router

import (
	"blogapi/api"
	"blogapi/middleware"
)

func (router RouterGroup) TagRouter() {
	tagApi := api.AppGroupApp.TagApi
	tagRouter := router.Group("tag")
	tagRouter.GET("list", tagApi.TagList)
	tagRouter.POST("", middleware.JwtAdmin(), tagApi.TagCreate)
	tagRouter.POST("delete", middleware.JwtAdmin(), tagApi.TagDelete)
}
