package dto

// ==================== 接口资源 ====================

// ApiListRequest API 列表请求
type ApiListRequest struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=10" binding:"omitempty,min=1"`
	Path     string `form:"path"`
	Summary  string `form:"summary"`
	Tags     string `form:"tags"`
}

// CreateApiRequest 创建 API 请求
type CreateApiRequest struct {
	Path    string `json:"path" binding:"required,max=100"`
	Method  string `json:"method" binding:"required,oneof=GET POST PUT DELETE PATCH"`
	Summary string `json:"summary" binding:"omitempty,max=500"`
	Tags    string `json:"tags" binding:"omitempty,max=100"`
}

// UpdateApiRequest 更新 API 请求
type UpdateApiRequest struct {
	ID      int64  `json:"id" binding:"required"`
	Path    string `json:"path" binding:"required,max=100"`
	Method  string `json:"method" binding:"required,oneof=GET POST PUT DELETE PATCH"`
	Summary string `json:"summary" binding:"omitempty,max=500"`
	Tags    string `json:"tags" binding:"omitempty,max=100"`
}
