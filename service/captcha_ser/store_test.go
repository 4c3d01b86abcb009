package captcha_ser

import (
	"testing"
	"time"

	"blogapi/config"
	"blogapi/global"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{}
	global.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		global.Redis.Close()
		global.Redis = nil
	})

	return NewRedisStore(), mr
}

func TestRedisStore_SingleUse(t *testing.T) {
	store, _ := setupStore(t)

	require.NoError(t, store.Set("id-1", "abc123"))

	// 不清除的读取可以重复
	assert.Equal(t, "abc123", store.Get("id-1", false))
	assert.Equal(t, "abc123", store.Get("id-1", false))

	// 取出即删除，第二次读到空
	assert.Equal(t, "abc123", store.Get("id-1", true))
	assert.Equal(t, "", store.Get("id-1", true))
	assert.Equal(t, "", store.Get("id-1", false))
}

func TestRedisStore_Verify(t *testing.T) {
	store, _ := setupStore(t)

	require.NoError(t, store.Set("id-2", "aBc123"))

	// 大小写不敏感，且校验同样消费验证码
	assert.True(t, store.Verify("id-2", "ABC123", true))
	assert.False(t, store.Verify("id-2", "ABC123", true))

	assert.False(t, store.Verify("unknown-id", "abc123", true))
}

func TestRedisStore_Expire(t *testing.T) {
	store, mr := setupStore(t)
	global.Config.Captcha.Expire = 60

	require.NoError(t, store.Set("id-3", "abc123"))

	// 过期后读不到
	mr.FastForward(61 * time.Second)
	assert.Equal(t, "", store.Get("id-3", true))
}
