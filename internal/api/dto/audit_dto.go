package dto

// ==================== 审计日志 ====================

// AuditLogListRequest 审计日志列表请求
// 时间参数为 RFC3339 字符串，解析失败在服务层报错
type AuditLogListRequest struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=10" binding:"omitempty,min=1"`

	Username string `form:"username"`
	Module   string `form:"module"`
	Method   string `form:"method"`
	Summary  string `form:"summary"`
	Path     string `form:"path"`
	Status   *int   `form:"status"`

	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`
}
