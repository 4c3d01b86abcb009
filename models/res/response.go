package res

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StandardResponse 所有接口的统一包体
// 业务失败也返回200，由code区分；HttpError用于中间件层的鉴权失败
type StandardResponse struct {
	Success bool         `json:"success"` // code为0时为true
	Code    ResponseCode `json:"code"`    // 业务状态码，见code.go
	Message string       `json:"message"` // 提示信息
	Data    interface{}  `json:"data"`    // 业务数据
}

// PageData 列表接口的分页包体
// page/page_size回显的是归一化后的实际取值，不是请求原值
type PageData[T any] struct {
	List       T     `json:"list"`
	Total      int64 `json:"total"`       // 过滤条件下的总行数
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

func Success(c *gin.Context, data interface{}) {
	response(c, http.StatusOK, 0, "success", data)
}

func SuccessWithMsg(c *gin.Context, data interface{}, msg string) {
	response(c, http.StatusOK, 0, msg, data)
}

// SuccessWithPage 返回分页列表
func SuccessWithPage[T any](c *gin.Context, list T, total int64, page, pageSize int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (int(total) + pageSize - 1) / pageSize
	}
	response(c, http.StatusOK, 0, "success", PageData[T]{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	})
}

// Error 业务错误，HTTP层仍返回200
func Error(c *gin.Context, code ResponseCode, msg string) {
	response(c, http.StatusOK, code, msg, nil)
}

// HttpError 带HTTP状态码的错误，用于401/403这类传输层语义
func HttpError(c *gin.Context, httpStatus int, code ResponseCode, msg string) {
	response(c, httpStatus, code, msg, nil)
}

func response(c *gin.Context, httpStatus int, code ResponseCode, msg string, data interface{}) {
	c.JSON(httpStatus, StandardResponse{
		Success: code == 0,
		Code:    code,
		Message: msg,
		Data:    data,
	})
}
