package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pigfarm_admin_v1/internal/model"
)

// ==================== AuditLogRepository 审计日志仓库 ====================

// AuditLogFilter 审计日志过滤条件
type AuditLogFilter struct {
	Username string
	Module   string
	Method   string
	Summary  string
	Path     string
	Status   *int

	StartTime time.Time
	EndTime   time.Time

	Page     int
	PageSize int
}

// AuditLogRepository 审计日志仓库接口
// 日志只追加、只清理，没有更新路径
type AuditLogRepository interface {
	Create(ctx context.Context, log *model.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, int64, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository 创建审计日志仓库
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create 写入一条审计日志
func (r *auditLogRepository) Create(ctx context.Context, log *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// List 审计日志分页列表，新日志在前
func (r *auditLogRepository) List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.AuditLog{})

	if filter.Username != "" {
		query = query.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.Module != "" {
		query = query.Where("module LIKE ?", "%"+filter.Module+"%")
	}
	if filter.Method != "" {
		query = query.Where("method = ?", filter.Method)
	}
	if filter.Summary != "" {
		query = query.Where("summary LIKE ?", "%"+filter.Summary+"%")
	}
	if filter.Path != "" {
		query = query.Where("path LIKE ?", "%"+filter.Path+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if !filter.StartTime.IsZero() {
		query = query.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		query = query.Where("created_at <= ?", filter.EndTime)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	offset := (filter.Page - 1) * filter.PageSize

	var logs []model.AuditLog
	err := query.Order("id DESC").Offset(offset).Limit(filter.PageSize).Find(&logs).Error
	return logs, total, err
}

// DeleteBefore 清理指定时间之前的日志，返回删除行数
func (r *auditLogRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.AuditLog{})
	return result.RowsAffected, result.Error
}
