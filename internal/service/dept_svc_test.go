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

func setupDeptSvcTest(t *testing.T) *DeptService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	err = db.AutoMigrate(&model.Dept{}, &model.DeptClosure{})
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return NewDeptService(repository.NewDeptRepository(db))
}

// seedTree 建 生产区 > 配怀舍 > 产房，返回各节点 ID
func seedTree(t *testing.T, svc *DeptService) (a, b, c int64) {
	ctx := context.Background()
	mustCreate := func(name string, parentID int64) int64 {
		if err := svc.Create(ctx, &dto.CreateDeptRequest{Name: name, ParentID: parentID}); err != nil {
			t.Fatalf("创建部门 %s 失败: %v", name, err)
		}
		dept, err := svc.deptRepo.GetByName(ctx, name)
		if err != nil || dept == nil {
			t.Fatalf("回查部门 %s 失败: %v", name, err)
		}
		return dept.ID
	}
	a = mustCreate("生产区", 0)
	b = mustCreate("配怀舍", a)
	c = mustCreate("产房", b)
	return a, b, c
}

func TestDeptService_CreateDuplicateName(t *testing.T) {
	svc := setupDeptSvcTest(t)
	ctx := context.Background()

	if err := svc.Create(ctx, &dto.CreateDeptRequest{Name: "生产区"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Create(ctx, &dto.CreateDeptRequest{Name: "生产区"}); !errors.Is(err, ErrDeptNameExists) {
		t.Errorf("重名创建 error = %v, want ErrDeptNameExists", err)
	}
}

func TestDeptService_CreateUnderMissingParent(t *testing.T) {
	svc := setupDeptSvcTest(t)

	err := svc.Create(context.Background(), &dto.CreateDeptRequest{Name: "产房", ParentID: 999})
	if !errors.Is(err, ErrDeptNotFound) {
		t.Errorf("挂到不存在的父节点 error = %v, want ErrDeptNotFound", err)
	}
}

func TestDeptService_MoveToDescendant(t *testing.T) {
	svc := setupDeptSvcTest(t)
	a, _, c := seedTree(t, svc)

	// 把生产区挂到自己的孙子下面会成环
	err := svc.Update(context.Background(), &dto.UpdateDeptRequest{
		ID:       a,
		Name:     "生产区",
		ParentID: c,
	})
	if !errors.Is(err, ErrDeptMoveToDescendant) {
		t.Errorf("移动到后代 error = %v, want ErrDeptMoveToDescendant", err)
	}
}

func TestDeptService_ListTree(t *testing.T) {
	svc := setupDeptSvcTest(t)
	a, b, _ := seedTree(t, svc)
	ctx := context.Background()

	tree, err := svc.ListTree(ctx, "")
	if err != nil {
		t.Fatalf("ListTree() error = %v", err)
	}
	if len(tree) != 1 || tree[0].ID != a {
		t.Fatalf("根节点 = %v, want 生产区", tree)
	}
	if len(tree[0].Children) != 1 || tree[0].Children[0].ID != b {
		t.Errorf("二级节点 = %v, want 配怀舍", tree[0].Children)
	}
	if len(tree[0].Children[0].Children) != 1 {
		t.Errorf("三级节点缺失")
	}

	// 名称过滤把父节点滤掉后，命中的子树提升为根
	filtered, err := svc.ListTree(ctx, "产房")
	if err != nil {
		t.Fatalf("ListTree() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "产房" {
		t.Errorf("过滤结果 = %v, want 产房提升为根", filtered)
	}
}

func TestDeptService_DeleteCascade(t *testing.T) {
	svc := setupDeptSvcTest(t)
	_, b, c := seedTree(t, svc)
	ctx := context.Background()

	if err := svc.Delete(ctx, b); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// 后代一并软删，树上不再出现
	tree, _ := svc.ListTree(ctx, "")
	if len(tree) != 1 || len(tree[0].Children) != 0 {
		t.Errorf("删除后树 = %v, want 只剩生产区", tree)
	}

	// 已删的部门再删按不存在处理
	if err := svc.Delete(ctx, b); !errors.Is(err, ErrDeptNotFound) {
		t.Errorf("重复删除 error = %v, want ErrDeptNotFound", err)
	}
	if err := svc.Delete(ctx, c); !errors.Is(err, ErrDeptNotFound) {
		t.Errorf("删除已级联软删的后代 error = %v, want ErrDeptNotFound", err)
	}
}
