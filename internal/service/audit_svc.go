package service

import (
	"context"
	"errors"
	"time"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

// ==================== AuditLogService 审计日志服务 ====================

// AuditLogService 审计日志服务
type AuditLogService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditLogService 创建审计日志服务
func NewAuditLogService(auditRepo repository.AuditLogRepository) *AuditLogService {
	return &AuditLogService{auditRepo: auditRepo}
}

// Record 写入一条审计日志
func (s *AuditLogService) Record(ctx context.Context, log *model.AuditLog) error {
	return s.auditRepo.Create(ctx, log)
}

// List 审计日志分页列表
func (s *AuditLogService) List(ctx context.Context, req *dto.AuditLogListRequest) ([]model.AuditLog, int64, error) {
	filter := repository.AuditLogFilter{
		Username: req.Username,
		Module:   req.Module,
		Method:   req.Method,
		Summary:  req.Summary,
		Path:     req.Path,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	if req.StartTime != "" {
		t, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return nil, 0, ErrInvalidTimeRange
		}
		filter.StartTime = t
	}
	if req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			return nil, 0, ErrInvalidTimeRange
		}
		filter.EndTime = t
	}

	return s.auditRepo.List(ctx, filter)
}

// CleanupBefore 清理保留期之外的日志，返回删除行数
func (s *AuditLogService) CleanupBefore(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.auditRepo.DeleteBefore(ctx, cutoff)
}

// ==================== 错误定义 ====================

var ErrInvalidTimeRange = errors.New("时间范围格式错误，应为 RFC3339")
