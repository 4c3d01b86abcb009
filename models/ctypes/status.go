package ctypes

// PublishStatus 文章发布状态
type PublishStatus string

const (
	PublishDraft     PublishStatus = "draft"     // 草稿
	PublishPublished PublishStatus = "published" // 已发布
)

// Valid 发布状态是否合法
func (s PublishStatus) Valid() bool {
	return s == PublishDraft || s == PublishPublished
}

// ModerationStatus 评论审核状态
type ModerationStatus string

const (
	ModerationPending ModerationStatus = "pending" // 待审核
	ModerationVisible ModerationStatus = "visible" // 公开可见
)

// Valid 审核状态是否合法
func (s ModerationStatus) Valid() bool {
	return s == ModerationPending || s == ModerationVisible
}
