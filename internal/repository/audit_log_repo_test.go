package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pigfarm_admin_v1/internal/model"
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(&model.AuditLog{})
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func TestAuditLogRepo_CreateAndList(t *testing.T) {
	db := setupAuditTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	logs := []*model.AuditLog{
		{Username: "alice", Module: "用户管理", Method: "POST", Path: "/api/v1/user/create", Status: 200},
		{Username: "alice", Module: "部门管理", Method: "POST", Path: "/api/v1/dept/create", Status: 200},
		{Username: "bob", Module: "用户管理", Method: "DELETE", Path: "/api/v1/user/delete", Status: 404},
	}
	for _, l := range logs {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	// 无条件：全部返回，新日志在前
	all, total, err := repo.List(ctx, AuditLogFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("List() = %d 条 (total %d), want 3", len(all), total)
	}
	if all[0].ID < all[1].ID {
		t.Errorf("日志应按 id 倒序返回")
	}

	// 按模块过滤
	byModule, total, _ := repo.List(ctx, AuditLogFilter{Module: "用户管理"})
	if total != 2 || len(byModule) != 2 {
		t.Errorf("按模块过滤 = %d 条, want 2", len(byModule))
	}

	// 按状态码过滤
	status := 404
	byStatus, _, _ := repo.List(ctx, AuditLogFilter{Status: &status})
	if len(byStatus) != 1 || byStatus[0].Username != "bob" {
		t.Errorf("按状态过滤 = %v, want 只有 bob 的记录", byStatus)
	}

	// 条件叠加 AND
	combined, _, _ := repo.List(ctx, AuditLogFilter{Module: "用户管理", Username: "alice"})
	if len(combined) != 1 {
		t.Errorf("组合过滤 = %d 条, want 1", len(combined))
	}
}

func TestAuditLogRepo_ListTimeRange(t *testing.T) {
	db := setupAuditTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	old := &model.AuditLog{Username: "alice", Module: "用户管理"}
	recent := &model.AuditLog{Username: "alice", Module: "用户管理"}
	repo.Create(ctx, old)
	repo.Create(ctx, recent)

	// 把其中一条改到 10 天前
	past := time.Now().AddDate(0, 0, -10)
	db.Model(&model.AuditLog{}).Where("id = ?", old.ID).Update("created_at", past)

	since := time.Now().AddDate(0, 0, -1)
	logs, total, err := repo.List(ctx, AuditLogFilter{StartTime: since})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(logs) != 1 || logs[0].ID != recent.ID {
		t.Errorf("时间过滤 = %v, want 只剩最近一条", logs)
	}
}

func TestAuditLogRepo_DeleteBefore(t *testing.T) {
	db := setupAuditTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	old := &model.AuditLog{Username: "alice"}
	recent := &model.AuditLog{Username: "bob"}
	repo.Create(ctx, old)
	repo.Create(ctx, recent)

	past := time.Now().AddDate(0, 0, -100)
	db.Model(&model.AuditLog{}).Where("id = ?", old.ID).Update("created_at", past)

	deleted, err := repo.DeleteBefore(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("DeleteBefore() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeleteBefore() = %d, want 1", deleted)
	}

	_, total, _ := repo.List(ctx, AuditLogFilter{})
	if total != 1 {
		t.Errorf("清理后剩 %d 条, want 1", total)
	}
}
