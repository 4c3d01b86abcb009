package cron_ser

import (
	"blogapi/global"
	"blogapi/models"
	"blogapi/service/redis_ser"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 单次刷盘的并发上限
const flushConcurrency = 8

// FlushArticleViewCounts 把redis累计的浏览计数刷回数据库
func FlushArticleViewCounts() {
	counts, err := redis_ser.PopArticleViewCounts()
	if err != nil {
		global.Log.Error("读取浏览计数失败", zap.String("error", err.Error()))
		return
	}
	if len(counts) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(flushConcurrency)

	for articleID, delta := range counts {
		articleID, delta := articleID, delta
		g.Go(func() error {
			return models.ArticleIncrViewCount(articleID, delta)
		})
	}

	if err := g.Wait(); err != nil {
		global.Log.Error("刷新文章浏览数失败", zap.String("error", err.Error()))
		return
	}

	global.Log.Info("文章浏览数刷盘完成", zap.Int("articles", len(counts)))
}
