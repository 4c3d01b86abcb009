package middleware

import (
	"net/http"
	"strings"

	"blogapi/models/ctypes"
	"blogapi/models/res"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// bearerToken 从Authorization头提取token
func bearerToken(c *gin.Context) (string, bool) {
	tokenString := c.Request.Header.Get("Authorization")
	if len(tokenString) < 7 || !strings.EqualFold(tokenString[:7], "Bearer ") {
		return "", false
	}
	return tokenString[7:], true
}

// JwtAuth 中间件，负责验证Token并将用户信息存储到上下文
func JwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "缺少token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, err.Error())
			c.Abort()
			return
		}

		// 将用户信息保存到上下文中，方便后续使用
		c.Set(claimsKey, claims)

		c.Next()
	}
}

// JwtAdmin 中间件，基于JwtAuth并检查用户角色
func JwtAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		JwtAuth()(c)
		if c.IsAborted() {
			return
		}

		claims := GetClaims(c)
		if claims == nil || claims.Role != ctypes.RoleAdmin {
			res.HttpError(c, http.StatusForbidden, res.PermissionDenied, "权限不足")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalJwtAuth 中间件，有token则解析身份，没有或解析失败都按匿名放行
// 解析失败不报错是刻意的：公开接口上无法区分"未登录"和"会话失效"，统一按匿名处理
func OptionalJwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := utils.ParseToken(tokenString); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetClaims 从上下文取当前登录用户，匿名返回nil
func GetClaims(c *gin.Context) *utils.CustomClaims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*utils.CustomClaims)
	if !ok {
		return nil
	}
	return claims
}
