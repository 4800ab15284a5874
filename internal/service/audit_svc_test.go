package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

func setupAuditSvcTest(t *testing.T) (*AuditLogService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.AuditLog{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return NewAuditLogService(repository.NewAuditLogRepository(db)), db
}

func TestAuditLogService_ListInvalidTimeRange(t *testing.T) {
	svc, _ := setupAuditSvcTest(t)

	_, _, err := svc.List(context.Background(), &dto.AuditLogListRequest{StartTime: "2026/01/01"})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("非法时间格式 error = %v, want ErrInvalidTimeRange", err)
	}
}

func TestAuditLogService_ListTimeRange(t *testing.T) {
	svc, _ := setupAuditSvcTest(t)
	ctx := context.Background()

	svc.Record(ctx, &model.AuditLog{Username: "alice", Module: "用户管理"})

	start := time.Now().Add(-time.Hour).Format(time.RFC3339)
	logs, total, err := svc.List(ctx, &dto.AuditLogListRequest{StartTime: start})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(logs) != 1 {
		t.Errorf("List() = %d 条, want 1", len(logs))
	}
}

func TestAuditLogService_CleanupBefore(t *testing.T) {
	svc, db := setupAuditSvcTest(t)
	ctx := context.Background()

	old := &model.AuditLog{Username: "alice"}
	recent := &model.AuditLog{Username: "bob"}
	svc.Record(ctx, old)
	svc.Record(ctx, recent)

	db.Model(&model.AuditLog{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().AddDate(0, 0, -100))

	deleted, err := svc.CleanupBefore(ctx, 90)
	if err != nil {
		t.Fatalf("CleanupBefore() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("CleanupBefore() = %d, want 1", deleted)
	}
}
