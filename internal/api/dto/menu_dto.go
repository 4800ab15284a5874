package dto

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 菜单 ====================

// MenuInfo 菜单信息，含子节点
type MenuInfo struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	MenuType  string         `json:"menu_type"`
	Icon      string         `json:"icon"`
	Path      string         `json:"path"`
	Order     int            `json:"order"`
	ParentID  int64          `json:"parent_id"`
	IsHidden  bool           `json:"is_hidden"`
	Component string         `json:"component"`
	Keepalive bool           `json:"keepalive"`
	Redirect  string         `json:"redirect"`
	Remark    datatypes.JSON `json:"remark"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Children []*MenuInfo `json:"children"`
}

// CreateMenuRequest 创建菜单请求
type CreateMenuRequest struct {
	Name      string         `json:"name" binding:"required,max=20"`
	MenuType  string         `json:"menu_type" binding:"omitempty,oneof=catalog menu"`
	Icon      string         `json:"icon" binding:"omitempty,max=100"`
	Path      string         `json:"path" binding:"omitempty,max=100"`
	Order     int            `json:"order"`
	ParentID  int64          `json:"parent_id"`
	IsHidden  bool           `json:"is_hidden"`
	Component string         `json:"component" binding:"omitempty,max=100"`
	Keepalive *bool          `json:"keepalive"`
	Redirect  string         `json:"redirect" binding:"omitempty,max=100"`
	Remark    datatypes.JSON `json:"remark"`
}

// UpdateMenuRequest 更新菜单请求
type UpdateMenuRequest struct {
	ID        int64          `json:"id" binding:"required"`
	Name      string         `json:"name" binding:"required,max=20"`
	MenuType  string         `json:"menu_type" binding:"omitempty,oneof=catalog menu"`
	Icon      string         `json:"icon" binding:"omitempty,max=100"`
	Path      string         `json:"path" binding:"omitempty,max=100"`
	Order     int            `json:"order"`
	ParentID  int64          `json:"parent_id"`
	IsHidden  bool           `json:"is_hidden"`
	Component string         `json:"component" binding:"omitempty,max=100"`
	Keepalive *bool          `json:"keepalive"`
	Redirect  string         `json:"redirect" binding:"omitempty,max=100"`
	Remark    datatypes.JSON `json:"remark"`
}
