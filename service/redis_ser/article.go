package redis_ser

import (
	"context"
	"strconv"
	"time"

	"blogapi/global"

	"go.uber.org/zap"
)

const (
	// 文章浏览计数的hash键，field为文章ID
	ArticleViewKey = "article:view_count"

	ViewIPExpire = 10 * time.Minute // 同一IP重复访问的去重窗口
)

// IncrArticleViewCount 增加文章浏览数
// 同一IP在去重窗口内的重复访问不计数
func IncrArticleViewCount(articleID uint, ip string) error {
	ctx := context.Background()
	idStr := strconv.FormatUint(uint64(articleID), 10)

	// SetNX做IP去重：窗口内已访问过则不再计数
	dedupKey := BuildKey("article", "view", "ip", idStr, ip)
	isNewView, err := global.Redis.SetNX(ctx, dedupKey, 1, ViewIPExpire).Result()
	if err != nil {
		global.Log.Error("检查IP访问记录失败",
			zap.Uint("articleID", articleID),
			zap.String("ip", ip),
			zap.String("error", err.Error()),
		)
		return err
	}
	if !isNewView {
		return nil
	}

	return global.Redis.HIncrBy(ctx, GetRedisKey(ArticleViewKey), idStr, 1).Err()
}

// PopArticleViewCounts 取出并清空累计的浏览计数
// 由定时任务调用，把计数批量刷回数据库
func PopArticleViewCounts() (map[uint]uint, error) {
	ctx := context.Background()
	key := GetRedisKey(ArticleViewKey)

	pipe := global.Redis.TxPipeline()
	getAll := pipe.HGetAll(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	result := getAll.Val()
	counts := make(map[uint]uint, len(result))
	for field, value := range result {
		id, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		delta, err := strconv.ParseUint(value, 10, 64)
		if err != nil || delta == 0 {
			continue
		}
		counts[uint(id)] = uint(delta)
	}
	return counts, nil
}
