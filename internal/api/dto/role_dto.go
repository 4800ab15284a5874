package dto

import "time"

// ==================== 角色 ====================

// RoleListRequest 角色列表请求
type RoleListRequest struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=10" binding:"omitempty,min=1"`
	RoleName string `form:"role_name"`
}

// RoleInfo 角色信息
type RoleInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRoleRequest 创建角色请求
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,max=20"`
	Desc string `json:"desc" binding:"omitempty,max=500"`
}

// UpdateRoleRequest 更新角色请求
type UpdateRoleRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required,max=20"`
	Desc string `json:"desc" binding:"omitempty,max=500"`
}

// UpdateRoleAuthorizedRequest 更新角色授权请求
// 菜单与接口授权整体替换，传空列表即清空
type UpdateRoleAuthorizedRequest struct {
	ID      int64   `json:"id" binding:"required"`
	MenuIDs []int64 `json:"menu_ids"`
	ApiIDs  []int64 `json:"api_ids"`
}
