package router

import (
	"blogapi/api"
	"blogapi/middleware"
)

func (router RouterGroup) CategoryRouter() {
	categoryApi := api.AppGroupApp.CategoryApi
	categoryRouter := router.Group("category")
	categoryRouter.GET("list", categoryApi.CategoryList)
	categoryRouter.POST("", middleware.JwtAdmin(), categoryApi.CategoryCreate)
	categoryRouter.PUT("", middleware.JwtAdmin(), categoryApi.CategoryUpdate)
	categoryRouter.POST("delete", middleware.JwtAdmin(), categoryApi.CategoryDelete)
}
