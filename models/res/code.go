package res

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 客户端错误码 (1000-1999)
	// 通用客户端错误 (1000-1099)
	BadRequest       ResponseCode = 1000 // 错误的请求
	Unauthorized     ResponseCode = 1001 // 未授权
	Forbidden        ResponseCode = 1003 // 禁止访问
	NotFound         ResponseCode = 1004 // 资源未找到
	MethodNotAllowed ResponseCode = 1005 // 方法不允许

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	MissingParameter ResponseCode = 1101 // 缺少参数
	InvalidFormat    ResponseCode = 1102 // 格式错误
	InvalidJSON      ResponseCode = 1103 // JSON解析错误

	// 认证授权错误 (1200-1299)
	TokenExpired     ResponseCode = 1200 // 令牌过期
	TokenInvalid     ResponseCode = 1201 // 令牌无效
	TokenMissing     ResponseCode = 1202 // 缺少令牌
	PermissionDenied ResponseCode = 1204 // 权限不足

	// 服务端错误码 (2000-2999)
	ServerError ResponseCode = 2000 // 服务器内部错误
	DBError     ResponseCode = 2100 // 数据库错误
	CacheError  ResponseCode = 2200 // 缓存错误

	// 业务错误码 (3000-3999)
	// 用户相关错误 (3000-3099)
	UserNotFound  ResponseCode = 3000 // 用户不存在
	PasswordError ResponseCode = 3002 // 密码错误

	// 验证码相关错误 (3100-3199)
	CaptchaError   ResponseCode = 3100 // 验证码错误
	CaptchaExpired ResponseCode = 3101 // 验证码已失效

	// 内容相关错误 (3200-3299)
	ContentTooLong    ResponseCode = 3200 // 内容超长
	ArticleNotVisible ResponseCode = 3201 // 文章未发布或已删除
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:       "请求参数错误",
	Unauthorized:     "未授权访问",
	Forbidden:        "禁止访问",
	NotFound:         "资源不存在",
	MethodNotAllowed: "请求方法不允许",

	InvalidParameter: "无效的参数",
	MissingParameter: "缺少必要参数",
	InvalidFormat:    "数据格式错误",
	InvalidJSON:      "JSON解析错误",

	TokenExpired:     "令牌已过期",
	TokenInvalid:     "令牌无效",
	TokenMissing:     "缺少令牌",
	PermissionDenied: "权限不足",

	ServerError: "服务器内部错误",
	DBError:     "数据库操作失败",
	CacheError:  "缓存操作失败",

	UserNotFound:  "用户不存在",
	PasswordError: "密码错误",

	CaptchaError:   "验证码错误",
	CaptchaExpired: "验证码已失效",

	ContentTooLong:    "内容超过长度限制",
	ArticleNotVisible: "文章未发布或已删除",
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	msg, ok := CodeMsg[code]
	if ok {
		return msg
	}
	return "未知错误"
}
