package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/config"
	"blogapi/global"
	"blogapi/models/ctypes"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 1,
			Issuer:  "blogapi-test",
		},
	}
}

func tokenFor(t *testing.T, role ctypes.UserRole) string {
	t.Helper()
	token, err := utils.GenerateToken(utils.PayLoad{
		Account: "tester",
		Role:    role,
		UserID:  1,
	})
	require.NoError(t, err)
	return token
}

func optionalAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/probe", OptionalJwtAuth(), func(c *gin.Context) {
		if GetClaims(c) == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "authenticated")
	})
	return r
}

func TestOptionalJwtAuth(t *testing.T) {
	setupAuthTest(t)
	r := optionalAuthRouter()

	t.Run("无token按匿名", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("无效token按匿名放行", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("有效token解析身份", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, ctypes.RoleUser))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "authenticated", w.Body.String())
	})
}

func TestJwtAdmin(t *testing.T) {
	setupAuthTest(t)
	r := gin.New()
	r.GET("/admin", JwtAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	t.Run("缺少token返回401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("普通用户返回403", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, ctypes.RoleUser))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("管理员放行", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, ctypes.RoleAdmin))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
