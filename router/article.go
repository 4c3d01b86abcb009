package router

import (
	"blogapi/api"
	"blogapi/middleware"
)

func (router RouterGroup) ArticleRouter() {
	articleApi := api.AppGroupApp.ArticleApi
	articleRouter := router.Group("article")
	articleRouter.GET(":id", middleware.OptionalJwtAuth(), articleApi.ArticleDetail)
	articleRouter.GET("list", middleware.OptionalJwtAuth(), articleApi.ArticleList)
	articleRouter.POST("", middleware.JwtAdmin(), articleApi.ArticleCreate)
	articleRouter.PUT("", middleware.JwtAdmin(), articleApi.ArticleUpdate)
	articleRouter.POST("delete", middleware.JwtAdmin(), articleApi.ArticleDelete)
}
