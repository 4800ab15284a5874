package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

func setupApiSvcTest(t *testing.T) (*ApiService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Api{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return NewApiService(repository.NewApiRepository(db)), db
}

func TestApiService_Refresh(t *testing.T) {
	svc, db := setupApiSvcTest(t)
	ctx := context.Background()

	// 库里有一条已经不存在的路由，和一条仍在注册表里的
	db.Create(&model.Api{Path: "/api/v1/legacy", Method: model.MethodGet, Summary: "已下线"})
	db.Create(&model.Api{Path: "/api/v1/user/list", Method: model.MethodGet, Summary: "查看用户列表"})

	routes := []RouteItem{
		{Method: "GET", Path: "/api/v1/user/list", Summary: "查看用户列表", Tags: "用户管理"},
		{Method: "POST", Path: "/api/v1/user/create", Summary: "创建用户", Tags: "用户管理"},
	}
	if err := svc.Refresh(ctx, routes); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	var apis []model.Api
	db.Order("path ASC").Find(&apis)
	if len(apis) != 2 {
		t.Fatalf("刷新后 = %d 条, want 2", len(apis))
	}
	byKey := make(map[string]model.Api)
	for _, api := range apis {
		byKey[string(api.Method)+" "+api.Path] = api
	}
	if _, ok := byKey["GET /api/v1/legacy"]; ok {
		t.Errorf("下线路由未被清理")
	}
	if _, ok := byKey["POST /api/v1/user/create"]; !ok {
		t.Errorf("新增路由未补录")
	}
	if _, ok := byKey["GET /api/v1/user/list"]; !ok {
		t.Errorf("既有路由不该被动")
	}
}
