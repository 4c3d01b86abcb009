package utils

import (
	"testing"

	"blogapi/config"
	"blogapi/global"
	"blogapi/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJwtConfig(t *testing.T) {
	t.Helper()
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 1,
			Issuer:  "blogapi-test",
		},
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJwtConfig(t)

	payload := PayLoad{
		Account:  "tester",
		Nickname: "测试用户",
		Role:     ctypes.RoleAdmin,
		UserID:   42,
	}

	token, err := GenerateToken(payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload, claims.PayLoad)
	assert.Equal(t, "blogapi-test", claims.Issuer)
}

func TestParseToken_Invalid(t *testing.T) {
	setupJwtConfig(t)

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	token, err := GenerateToken(PayLoad{Account: "tester", UserID: 1})
	require.NoError(t, err)

	// 换密钥后签名校验失败
	global.Config.Jwt.Secret = "another-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pwd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pwd", hashed)

	assert.True(t, CheckPassword(hashed, "s3cret-pwd"))
	assert.False(t, CheckPassword(hashed, "wrong-pwd"))
}
