package core

import (
	"context"
	"time"

	"blogapi/global"

	"github.com/avast/retry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis 初始化Redis
func InitRedis() *redis.Client {
	redisConf := global.Config.Redis

	opts := &redis.Options{
		Addr:     redisConf.Addr(),
		Password: redisConf.Password,
		DB:       redisConf.DB,
	}
	rdb := redis.NewClient(opts)

	// 启动时redis可能尚未就绪，带退避重试几次
	err := retry.Do(
		func() error {
			_, err := rdb.Ping(context.Background()).Result()
			return err
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
	if err != nil {
		global.Log.Error("Redis连接失败", zap.String("addr", redisConf.Addr()), zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("Redis连接成功", zap.String("method", "InitRedis"), zap.String("path", "core/redis.go"))
	return rdb
}
