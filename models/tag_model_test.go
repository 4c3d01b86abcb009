package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagDelete_CleansJoinRows(t *testing.T) {
	setupTestDB(t)

	tag := &TagModel{Name: "golang"}
	require.NoError(t, tag.Create())

	article := &ArticleModel{UserID: 1, Title: "t", Content: "c"}
	require.NoError(t, ArticleCreate(article, []uint{tag.ID}))

	require.NoError(t, TagDelete([]uint{tag.ID}))

	// 标签删除后文章侧不再带这个标签
	got, err := ArticleGet(article.ID, false)
	require.NoError(t, err)
	assert.Empty(t, got.TagIDs)

	tags, err := TagList()
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestCategoryCRUD(t *testing.T) {
	setupTestDB(t)

	first := &CategoryModel{Name: "后端", Sort: 2}
	require.NoError(t, first.Create())
	second := &CategoryModel{Name: "前端", Sort: 1}
	require.NoError(t, second.Create())

	// 列表按sort升序
	categories, err := CategoryList()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "前端", categories[0].Name)

	first.Name = "服务端"
	require.NoError(t, first.Update())

	categories, err = CategoryList()
	require.NoError(t, err)
	assert.Equal(t, "服务端", categories[1].Name)

	require.NoError(t, CategoryDelete([]uint{first.ID, second.ID}))
	categories, err = CategoryList()
	require.NoError(t, err)
	assert.Empty(t, categories)
}
