package captcha_ser

import (
	"context"
	"errors"
	"strings"
	"time"

	"blogapi/global"
	"blogapi/service/redis_ser"

	"github.com/mojocn/base64Captcha"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// 验证码键前缀
	captchaKeyPrefix = "captcha:code:"

	defaultExpire = 5 * time.Minute
)

// RedisStore 基于redis的验证码存储，实现base64Captcha.Store接口
// 验证码一次性使用：读取即删除，多实例部署下同一id并发提交也只有一次能读到
type RedisStore struct{}

// NewRedisStore 创建验证码存储
func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

func captchaKey(id string) string {
	return redis_ser.GetRedisKey(captchaKeyPrefix + id)
}

func expire() time.Duration {
	if global.Config != nil && global.Config.Captcha.Expire > 0 {
		return time.Duration(global.Config.Captcha.Expire) * time.Second
	}
	return defaultExpire
}

// Set 保存验证码，带有效期
func (s *RedisStore) Set(id string, value string) error {
	err := global.Redis.Set(context.Background(), captchaKey(id), value, expire()).Err()
	if err != nil {
		global.Log.Error("保存验证码失败", zap.String("id", id), zap.String("error", err.Error()))
	}
	return err
}

// Get 读取验证码
// clear为true时使用GETDEL原子地取出并删除，保证一次性语义
func (s *RedisStore) Get(id string, clear bool) string {
	ctx := context.Background()
	var value string
	var err error
	if clear {
		value, err = global.Redis.GetDel(ctx, captchaKey(id)).Result()
	} else {
		value, err = global.Redis.Get(ctx, captchaKey(id)).Result()
	}
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			global.Log.Error("读取验证码失败", zap.String("id", id), zap.String("error", err.Error()))
		}
		return ""
	}
	return value
}

// Verify 校验验证码，大小写不敏感
func (s *RedisStore) Verify(id, answer string, clear bool) bool {
	stored := s.Get(id, clear)
	if stored == "" {
		return false
	}
	return strings.EqualFold(stored, answer)
}

var _ base64Captcha.Store = (*RedisStore)(nil)
