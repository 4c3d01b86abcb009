package models

import (
	"strings"
	"testing"
	"time"

	"blogapi/global"
	"blogapi/models/ctypes"
	"blogapi/utils"

	"github.com/mojocn/base64Captcha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore() base64Captcha.Store {
	return base64Captcha.NewMemoryStore(100, time.Minute)
}

func TestCommentCreate_Authenticated(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = true

	claims := &utils.CustomClaims{
		PayLoad: utils.PayLoad{
			Account:  "tester",
			Nickname: "",
			UserID:   42,
		},
	}
	comment := &CommentModel{
		ArticleID: 1,
		Content:   "  你好，世界  ",
		Nickname:  "伪造的昵称",
	}

	// 登录用户不需要验证码，哪怕站点开启了校验、传了无效的验证码字段
	err := CommentCreate(comment, claims, newMemStore(), "bogus-id", "bogus-code")
	require.NoError(t, err)

	assert.Equal(t, ctypes.ModerationVisible, comment.Status)
	require.NotNil(t, comment.UserID)
	assert.Equal(t, uint(42), *comment.UserID)
	// 昵称为空时回退到账号
	assert.Equal(t, "tester", comment.Nickname)
	assert.Equal(t, "你好，世界", comment.Content)
}

func TestCommentCreate_AnonymousCaptchaOff(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = false

	fakeOwner := uint(7)
	comment := &CommentModel{
		ArticleID: 1,
		Content:   "匿名评论",
		Nickname:  "路人甲",
		UserID:    &fakeOwner,
	}

	err := CommentCreate(comment, nil, newMemStore(), "", "")
	require.NoError(t, err)

	assert.Equal(t, ctypes.ModerationPending, comment.Status)
	// 匿名提交不信任请求里携带的归属
	assert.Nil(t, comment.UserID)
	assert.Equal(t, "路人甲", comment.Nickname)
}

func TestCommentCreate_AnonymousCaptcha(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = true

	t.Run("缺少验证码", func(t *testing.T) {
		err := CommentCreate(&CommentModel{ArticleID: 1, Content: "c"}, nil, newMemStore(), "", "")
		assert.ErrorIs(t, err, ErrCaptcha)
	})

	t.Run("验证码不存在或已过期", func(t *testing.T) {
		err := CommentCreate(&CommentModel{ArticleID: 1, Content: "c"}, nil, newMemStore(), "unknown-id", "123456")
		assert.ErrorIs(t, err, ErrCaptchaExpired)
	})

	t.Run("验证码不匹配", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Set("id-1", "abc123"))
		err := CommentCreate(&CommentModel{ArticleID: 1, Content: "c"}, nil, store, "id-1", "zzz999")
		assert.ErrorIs(t, err, ErrCaptcha)
	})

	t.Run("忽略大小写匹配", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Set("id-2", "aBc123"))
		err := CommentCreate(&CommentModel{ArticleID: 1, Content: "c"}, nil, store, "id-2", "ABC123")
		assert.NoError(t, err)
	})

	t.Run("验证码只能用一次", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Set("id-3", "abc123"))

		err := CommentCreate(&CommentModel{ArticleID: 1, Content: "first"}, nil, store, "id-3", "abc123")
		require.NoError(t, err)

		// 同一个id再次提交，取出即删，按过期处理
		err = CommentCreate(&CommentModel{ArticleID: 1, Content: "second"}, nil, store, "id-3", "abc123")
		assert.ErrorIs(t, err, ErrCaptchaExpired)
	})

	t.Run("校验失败的验证码也被消费", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Set("id-4", "abc123"))

		err := CommentCreate(&CommentModel{ArticleID: 1, Content: "c"}, nil, store, "id-4", "wrong1")
		assert.ErrorIs(t, err, ErrCaptcha)

		err = CommentCreate(&CommentModel{ArticleID: 1, Content: "c"}, nil, store, "id-4", "abc123")
		assert.ErrorIs(t, err, ErrCaptchaExpired)
	})
}

func TestCommentCreate_ContentLength(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = false

	// 按字符数而不是字节数计算，用多字节字符验证
	ok := &CommentModel{ArticleID: 1, Content: strings.Repeat("测", 1000)}
	require.NoError(t, CommentCreate(ok, nil, newMemStore(), "", ""))

	tooLong := &CommentModel{ArticleID: 1, Content: strings.Repeat("测", 1001)}
	assert.ErrorIs(t, CommentCreate(tooLong, nil, newMemStore(), "", ""), ErrContentTooLong)

	// 首尾空白裁剪后再计长度
	padded := &CommentModel{ArticleID: 1, Content: "  " + strings.Repeat("测", 1000) + "  "}
	assert.NoError(t, CommentCreate(padded, nil, newMemStore(), "", ""))
}

func TestCommentCreate_ParentComment(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = false

	parent := &CommentModel{ArticleID: 1, Content: "顶级评论"}
	require.NoError(t, CommentCreate(parent, nil, newMemStore(), "", ""))

	// 父评论必须属于同一篇文章
	wrongArticle := &CommentModel{ArticleID: 2, ParentID: parent.ID, Content: "回复"}
	assert.ErrorIs(t, CommentCreate(wrongArticle, nil, newMemStore(), "", ""), ErrParentCommentNotExist)

	reply := &CommentModel{ArticleID: 1, ParentID: parent.ID, Content: "回复"}
	assert.NoError(t, CommentCreate(reply, nil, newMemStore(), "", ""))

	notExist := &CommentModel{ArticleID: 1, ParentID: 9999, Content: "回复"}
	assert.ErrorIs(t, CommentCreate(notExist, nil, newMemStore(), "", ""), ErrParentCommentNotExist)
}

func TestCommentUpdate(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = false

	comment := &CommentModel{ArticleID: 1, Content: "原始内容"}
	require.NoError(t, CommentCreate(comment, nil, newMemStore(), "", ""))
	assert.Equal(t, ctypes.ModerationPending, comment.Status)

	// 编辑内容并放行
	require.NoError(t, CommentUpdate(comment.ID, "修改后的内容", ctypes.ModerationVisible))

	got, err := CommentGet(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "修改后的内容", got.Content)
	assert.Equal(t, ctypes.ModerationVisible, got.Status)

	// 不传状态时保持原状态
	require.NoError(t, CommentUpdate(comment.ID, "再次修改", ""))
	got, err = CommentGet(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, ctypes.ModerationVisible, got.Status)

	assert.ErrorIs(t, CommentUpdate(comment.ID, strings.Repeat("测", 1001), ""), ErrContentTooLong)
}

func TestCommentDelete_IncludesReplies(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = false

	parent := &CommentModel{ArticleID: 1, Content: "顶级评论"}
	require.NoError(t, CommentCreate(parent, nil, newMemStore(), "", ""))
	reply := &CommentModel{ArticleID: 1, ParentID: parent.ID, Content: "回复"}
	require.NoError(t, CommentCreate(reply, nil, newMemStore(), "", ""))
	other := &CommentModel{ArticleID: 1, Content: "无关评论"}
	require.NoError(t, CommentCreate(other, nil, newMemStore(), "", ""))

	require.NoError(t, CommentDelete([]uint{parent.ID}))

	comments, total, err := CommentList(CommentFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, comments, 1)
	assert.Equal(t, other.ID, comments[0].ID)

	// 软删除的行可以通过include_deleted找回
	_, total, err = CommentList(CommentFilter{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestCommentList_Visibility(t *testing.T) {
	setupTestDB(t)
	global.Config.Captcha.Open = false

	visible := &CommentModel{ArticleID: 1, Content: "已放行", Status: ctypes.ModerationVisible}
	require.NoError(t, global.DB.Create(visible).Error)
	pending := &CommentModel{ArticleID: 1, Content: "待审核", Status: ctypes.ModerationPending}
	require.NoError(t, global.DB.Create(pending).Error)

	// 匿名默认只能看到已放行的评论
	anon := CommentFilter{}
	anon.ApplyVisibility(true)
	comments, total, err := CommentList(anon)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, comments, 1)
	assert.Equal(t, ctypes.ModerationVisible, comments[0].Status)

	// 显式指定状态不被覆盖
	explicit := CommentFilter{Status: ctypes.ModerationPending}
	explicit.ApplyVisibility(true)
	_, total, err = CommentList(explicit)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// 登录身份不加默认过滤
	all := CommentFilter{}
	all.ApplyVisibility(false)
	_, total, err = CommentList(all)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
