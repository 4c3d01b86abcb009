package models

import (
	"blogapi/models/ctypes"

	"gorm.io/gorm"
)

type PageInfo struct {
	Page     int    `json:"page" form:"page" validate:"omitempty,gt=0"`
	Key      string `json:"key" form:"key"`
	PageSize int    `json:"page_size" form:"page_size" validate:"omitempty,gt=0,lte=100"`
}

// Normalize 分页参数兜底
func (p *PageInfo) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
}

// Offset 计算分页偏移量
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type MODEL struct {
	ID        uint           `gorm:"primaryKey" json:"id" structs:"-"`
	CreatedAt ctypes.MyTime  `json:"created_at" structs:"-"`
	UpdatedAt ctypes.MyTime  `json:"updated_at" structs:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" structs:"-"`
}

type IDRequest struct {
	ID uint `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}

type IDsRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,gt=0"`
}
