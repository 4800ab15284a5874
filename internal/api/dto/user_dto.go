package dto

import (
	"time"

	"pigfarm_admin_v1/internal/model"
)

// ==================== 用户列表 ====================

// UserListRequest 用户列表请求
// 过滤参数均为可选：字符串为空不参与过滤，dept_id 只要传了就精确匹配（包括 0）
type UserListRequest struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=10" binding:"omitempty,min=1"`

	Username string `form:"username"`
	Email    string `form:"email"`
	DeptID   *int64 `form:"dept_id"`

	// 猪场管理相关搜索条件
	SowNumber     string `form:"sow_number"`
	EarTag        string `form:"ear_tag"`
	PenNumber     string `form:"pen_number"`
	FeederNumber  string `form:"feeder_number"`
	PigBreed      string `form:"pig_breed"`
	FeedingStatus string `form:"feeding_status"`
	FeederStatus  string `form:"feeder_status"`
}

// UserListItem 列表项：角色内嵌为数组，dept_id 被替换为内嵌部门对象
type UserListItem struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Alias       string     `json:"alias"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	IsActive    bool       `json:"is_active"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Roles []RoleInfo `json:"roles"`
	Dept  any        `json:"dept"` // 部门对象；无部门时为空对象 {}

	model.FeedingFields
}

// ==================== 用户详情 ====================

// UserDetail 单查返回，保留原始 dept_id，不内嵌角色
type UserDetail struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Alias       string     `json:"alias"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	IsActive    bool       `json:"is_active"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	DeptID      *int64     `json:"dept_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	model.FeedingFields
}

// ==================== 创建 / 更新 ====================

// CreateUserRequest 创建用户请求
// 饲喂档案字段通过组合共用 model.FeedingFields，未传的字段取默认值或留空
type CreateUserRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Username    string  `json:"username" binding:"required,max=20"`
	Password    string  `json:"password" binding:"required,min=6,max=100"`
	Alias       string  `json:"alias" binding:"omitempty,max=30"`
	Phone       string  `json:"phone" binding:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
	RoleIDs     []int64 `json:"role_ids"`
	DeptID      *int64  `json:"dept_id"`

	model.FeedingFields
}

// UpdateUserRequest 更新用户请求
// 除 id 外全部可选：只更新请求里出现的字段，角色集合整体替换
type UpdateUserRequest struct {
	ID          int64   `json:"id" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Username    *string `json:"username" binding:"omitempty,max=20"`
	Alias       *string `json:"alias" binding:"omitempty,max=30"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
	RoleIDs     []int64 `json:"role_ids"`
	DeptID      *int64  `json:"dept_id"`

	model.FeedingFields
}

// ==================== 密码重置 ====================

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}
