package models

import (
	"testing"

	"blogapi/global"
	"blogapi/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func joinRowCount(t *testing.T, articleID uint) int64 {
	t.Helper()
	var count int64
	err := global.DB.Model(&ArticleTagModel{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestArticleCreate_WithTags(t *testing.T) {
	setupTestDB(t)

	article := &ArticleModel{UserID: 1, Title: "第一篇", Content: "正文"}
	require.NoError(t, ArticleCreate(article, []uint{1, 2, 3}))
	assert.Equal(t, ctypes.PublishDraft, article.Status)

	got, err := ArticleGet(article.ID, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2, 3}, got.TagIDs)

	// 空标签集合合法，不产生关联行
	bare := &ArticleModel{UserID: 1, Title: "无标签", Content: "正文"}
	require.NoError(t, ArticleCreate(bare, nil))
	assert.Equal(t, int64(0), joinRowCount(t, bare.ID))
}

func TestArticleCreate_InvalidStatus(t *testing.T) {
	setupTestDB(t)

	article := &ArticleModel{UserID: 1, Title: "t", Content: "c", Status: "archived"}
	assert.ErrorIs(t, ArticleCreate(article, nil), ErrInvalidStatus)
}

func TestArticleUpdate_RebuildsTags(t *testing.T) {
	setupTestDB(t)

	article := &ArticleModel{UserID: 1, Title: "原标题", Content: "正文"}
	require.NoError(t, ArticleCreate(article, []uint{1, 2, 3}))

	// 关联整体重建，不做增量合并
	article.Title = "新标题"
	require.NoError(t, ArticleUpdate(article, []uint{2, 4}))

	got, err := ArticleGet(article.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "新标题", got.Title)
	assert.ElementsMatch(t, []uint{2, 4}, got.TagIDs)

	// 更新为空集合清掉全部关联
	require.NoError(t, ArticleUpdate(article, nil))
	assert.Equal(t, int64(0), joinRowCount(t, article.ID))
}

func TestArticleUpdate_ArticleMustExist(t *testing.T) {
	setupTestDB(t)

	// 不存在的文章id：报错且不留下孤儿关联行
	ghost := &ArticleModel{MODEL: MODEL{ID: 9999}, Title: "t", Content: "c", Status: ctypes.PublishPublished}
	err := ArticleUpdate(ghost, []uint{1, 2})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, int64(0), joinRowCount(t, 9999))

	// 软删除的文章同样按不存在处理，原关联不被重建
	deleted := &ArticleModel{UserID: 1, Title: "已删除", Content: "正文"}
	require.NoError(t, ArticleCreate(deleted, []uint{1}))
	require.NoError(t, ArticleDelete([]uint{deleted.ID}))

	deleted.Title = "改动"
	err = ArticleUpdate(deleted, []uint{2, 3})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, int64(0), joinRowCount(t, deleted.ID))
}

func TestArticleDelete_CleansJoinRows(t *testing.T) {
	setupTestDB(t)

	article := &ArticleModel{UserID: 1, Title: "待删除", Content: "正文"}
	require.NoError(t, ArticleCreate(article, []uint{1, 2}))

	require.NoError(t, ArticleDelete([]uint{article.ID}))

	// 关联行硬删除，文章行软删除
	assert.Equal(t, int64(0), joinRowCount(t, article.ID))

	_, err := ArticleGet(article.ID, true)
	assert.ErrorIs(t, err, ErrArticleNotVisible)

	got, err := ArticleGet(article.ID, false)
	require.NoError(t, err)
	assert.True(t, got.DeletedAt.Valid)
}

func TestArticleGet_AnonymousVisibility(t *testing.T) {
	setupTestDB(t)

	draft := &ArticleModel{UserID: 1, Title: "草稿", Content: "正文"}
	require.NoError(t, ArticleCreate(draft, nil))
	published := &ArticleModel{UserID: 1, Title: "已发布", Content: "正文", Status: ctypes.PublishPublished}
	require.NoError(t, ArticleCreate(published, nil))

	// 匿名只能看到已发布文章，草稿按不可见处理而不是404
	_, err := ArticleGet(draft.ID, true)
	assert.ErrorIs(t, err, ErrArticleNotVisible)

	got, err := ArticleGet(published.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "已发布", got.Title)

	// 登录身份不受限制
	_, err = ArticleGet(draft.ID, false)
	assert.NoError(t, err)

	_, err = ArticleGet(9999, true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArticleList_Visibility(t *testing.T) {
	setupTestDB(t)

	draft := &ArticleModel{UserID: 1, Title: "草稿", Content: "正文"}
	require.NoError(t, ArticleCreate(draft, nil))
	published := &ArticleModel{UserID: 1, Title: "已发布", Content: "正文", Status: ctypes.PublishPublished}
	require.NoError(t, ArticleCreate(published, nil))
	deleted := &ArticleModel{UserID: 1, Title: "已删除", Content: "正文", Status: ctypes.PublishPublished}
	require.NoError(t, ArticleCreate(deleted, nil))
	require.NoError(t, ArticleDelete([]uint{deleted.ID}))

	// 匿名默认只看到已发布且未删除的文章
	anon := ArticleFilter{}
	anon.ApplyVisibility(true)
	articles, total, err := ArticleList(anon)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, articles, 1)
	assert.Equal(t, published.ID, articles[0].ID)

	// 显式指定状态不被覆盖
	explicit := ArticleFilter{Status: ctypes.PublishDraft}
	explicit.ApplyVisibility(true)
	_, total, err = ArticleList(explicit)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// include_deleted找回软删除行
	all := ArticleFilter{IncludeDeleted: true}
	all.ApplyVisibility(false)
	_, total, err = ArticleList(all)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestArticleList_Filters(t *testing.T) {
	setupTestDB(t)

	catA := uint(1)
	catB := uint(2)
	a1 := &ArticleModel{UserID: 1, CategoryID: &catA, Title: "Go并发模式", Content: "正文", Status: ctypes.PublishPublished}
	require.NoError(t, ArticleCreate(a1, []uint{10}))
	a2 := &ArticleModel{UserID: 2, CategoryID: &catB, Title: "数据库调优", Content: "正文", Status: ctypes.PublishPublished}
	require.NoError(t, ArticleCreate(a2, []uint{20}))

	tagID := uint(10)
	_, total, err := ArticleList(ArticleFilter{TagID: &tagID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = ArticleList(ArticleFilter{CategoryID: &catB})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = ArticleList(ArticleFilter{PageInfo: PageInfo{Key: "并发"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestArticleIncrViewCount(t *testing.T) {
	setupTestDB(t)

	article := &ArticleModel{UserID: 1, Title: "t", Content: "c", Status: ctypes.PublishPublished}
	require.NoError(t, ArticleCreate(article, nil))

	require.NoError(t, ArticleIncrViewCount(article.ID, 3))
	require.NoError(t, ArticleIncrViewCount(article.ID, 2))

	got, err := ArticleGet(article.ID, false)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ViewCount)
}
