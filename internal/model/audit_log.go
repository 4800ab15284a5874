package model

import "gorm.io/datatypes"

// AuditLog 审计日志，一条记录对应一次请求
// 只写入，永不更新
type AuditLog struct {
	BaseModel
	UserID       int64          `gorm:"index" json:"user_id"`
	Username     string         `gorm:"size:64;default:'';index" json:"username"`
	Module       string         `gorm:"size:64;default:'';index" json:"module"`
	Summary      string         `gorm:"size:128;default:'';index" json:"summary"`
	Method       string         `gorm:"size:10;default:'';index" json:"method"`
	Path         string         `gorm:"size:255;default:'';index" json:"path"`
	Status       int            `gorm:"default:-1;index" json:"status"`
	ResponseTime int            `gorm:"default:0;index" json:"response_time"` // 单位 ms
	RequestArgs  datatypes.JSON `json:"request_args"`
	ResponseBody datatypes.JSON `json:"response_body"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
