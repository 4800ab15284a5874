package dto

import "time"

// ==================== 部门 ====================

// DeptListRequest 部门列表请求
type DeptListRequest struct {
	Name string `form:"name"`
}

// DeptInfo 部门信息
type DeptInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Desc      string    `json:"desc"`
	Order     int       `json:"order"`
	ParentID  int64     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeptTreeNode 部门树节点
type DeptTreeNode struct {
	DeptInfo
	Children []*DeptTreeNode `json:"children"`
}

// CreateDeptRequest 创建部门请求
type CreateDeptRequest struct {
	Name     string `json:"name" binding:"required,max=20"`
	Desc     string `json:"desc" binding:"omitempty,max=500"`
	Order    int    `json:"order"`
	ParentID int64  `json:"parent_id"`
}

// UpdateDeptRequest 更新部门请求
type UpdateDeptRequest struct {
	ID       int64  `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required,max=20"`
	Desc     string `json:"desc" binding:"omitempty,max=500"`
	Order    int    `json:"order"`
	ParentID int64  `json:"parent_id"`
}
