package api

import (
	"blogapi/api/article"
	"blogapi/api/category"
	"blogapi/api/comment"
	"blogapi/api/system"
	"blogapi/api/tag"
	"blogapi/api/user"
)

type AppGroup struct {
	SystemApi   system.System
	UserApi     user.User
	ArticleApi  article.Article
	CommentApi  comment.Comment
	CategoryApi category.Category
	TagApi      tag.Tag
}

var AppGroupApp = new(AppGroup)
