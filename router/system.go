package router

import (
	"blogapi/api"
)

func (router RouterGroup) SystemRouter() {
	systemRouter := router.Group("system")
	systemApi := api.AppGroupApp.SystemApi
	systemRouter.GET("captcha", systemApi.CaptchaCreate)
	systemRouter.GET("site", systemApi.SiteInfo)
}
