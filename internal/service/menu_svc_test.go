package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

func setupMenuSvcTest(t *testing.T) (*MenuService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Menu{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return NewMenuService(repository.NewMenuRepository(db)), db
}

func TestMenuService_DeleteWithChildren(t *testing.T) {
	svc, db := setupMenuSvcTest(t)
	ctx := context.Background()

	if err := svc.Create(ctx, &dto.CreateMenuRequest{Name: "系统管理", MenuType: "catalog"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	var parent model.Menu
	db.Where("name = ?", "系统管理").First(&parent)

	if err := svc.Create(ctx, &dto.CreateMenuRequest{Name: "用户管理", MenuType: "menu", ParentID: parent.ID}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// 有子菜单的目录不能删
	if err := svc.Delete(ctx, parent.ID); !errors.Is(err, ErrMenuHasChildren) {
		t.Errorf("删除有子菜单的目录 error = %v, want ErrMenuHasChildren", err)
	}

	var child model.Menu
	db.Where("name = ?", "用户管理").First(&child)
	if err := svc.Delete(ctx, child.ID); err != nil {
		t.Fatalf("删除叶子菜单失败: %v", err)
	}
	// 子菜单删完后父节点可删
	if err := svc.Delete(ctx, parent.ID); err != nil {
		t.Errorf("删除空目录失败: %v", err)
	}
}

func TestMenuService_ListTree(t *testing.T) {
	svc, db := setupMenuSvcTest(t)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateMenuRequest{Name: "系统管理", MenuType: "catalog", Order: 1})
	var parent model.Menu
	db.Where("name = ?", "系统管理").First(&parent)
	svc.Create(ctx, &dto.CreateMenuRequest{Name: "用户管理", MenuType: "menu", ParentID: parent.ID})

	tree, err := svc.ListTree(ctx)
	if err != nil {
		t.Fatalf("ListTree() error = %v", err)
	}
	if len(tree) != 1 || tree[0].Name != "系统管理" {
		t.Fatalf("根节点 = %v, want 系统管理", tree)
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].Name != "用户管理" {
		t.Errorf("子节点 = %v, want 用户管理", tree[0].Children)
	}
}

func TestMenuService_KeepaliveDefault(t *testing.T) {
	svc, db := setupMenuSvcTest(t)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateMenuRequest{Name: "用户管理", MenuType: "menu"})
	var menu model.Menu
	db.Where("name = ?", "用户管理").First(&menu)
	if !menu.Keepalive {
		t.Errorf("keepalive 默认值应为 true")
	}
}
