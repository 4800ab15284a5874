package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pigfarm_admin_v1/internal/model"
)

func setupDeptTestDB(t *testing.T) *gorm.DB {
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
	return db
}

// 建一条 生产区 > 配怀舍 > 产房 的链
func seedDeptChain(t *testing.T, repo DeptRepository) (a, b, c *model.Dept) {
	ctx := context.Background()
	a = &model.Dept{Name: "生产区"}
	if err := repo.CreateWithClosure(ctx, a); err != nil {
		t.Fatalf("创建根部门失败: %v", err)
	}
	b = &model.Dept{Name: "配怀舍", ParentID: a.ID}
	if err := repo.CreateWithClosure(ctx, b); err != nil {
		t.Fatalf("创建二级部门失败: %v", err)
	}
	c = &model.Dept{Name: "产房", ParentID: b.ID}
	if err := repo.CreateWithClosure(ctx, c); err != nil {
		t.Fatalf("创建三级部门失败: %v", err)
	}
	return a, b, c
}

// ancestorLevels 把闭包行转成 祖先ID -> level 的映射，便于断言
func ancestorLevels(t *testing.T, repo DeptRepository, descendant int64) map[int64]int {
	rows, err := repo.ClosureRows(context.Background(), descendant)
	if err != nil {
		t.Fatalf("ClosureRows() error = %v", err)
	}
	levels := make(map[int64]int, len(rows))
	for _, row := range rows {
		levels[row.Ancestor] = row.Level
	}
	return levels
}

func TestDeptRepo_CreateWithClosure(t *testing.T) {
	db := setupDeptTestDB(t)
	repo := NewDeptRepository(db)
	a, b, c := seedDeptChain(t, repo)

	// 每个节点都有 level=0 的自指行
	for _, dept := range []*model.Dept{a, b, c} {
		levels := ancestorLevels(t, repo, dept.ID)
		if lvl, ok := levels[dept.ID]; !ok || lvl != 0 {
			t.Errorf("部门 %s 缺少自指行", dept.Name)
		}
	}

	// 三级节点有完整祖先链，level 等于路径长度
	levels := ancestorLevels(t, repo, c.ID)
	if len(levels) != 3 {
		t.Fatalf("产房闭包行 = %d 条, want 3", len(levels))
	}
	if levels[b.ID] != 1 || levels[a.ID] != 2 {
		t.Errorf("祖先 level = %v, want 配怀舍=1 生产区=2", levels)
	}
}

func TestDeptRepo_MoveSubtree(t *testing.T) {
	db := setupDeptTestDB(t)
	repo := NewDeptRepository(db)
	ctx := context.Background()
	a, b, c := seedDeptChain(t, repo)

	// 把配怀舍整棵子树提到根
	b.ParentID = 0
	if err := repo.UpdateWithClosure(ctx, b, true); err != nil {
		t.Fatalf("UpdateWithClosure() error = %v", err)
	}

	levels := ancestorLevels(t, repo, c.ID)
	if len(levels) != 2 {
		t.Fatalf("迁移后产房闭包行 = %d 条, want 2", len(levels))
	}
	if _, ok := levels[a.ID]; ok {
		t.Errorf("生产区不应再是产房的祖先")
	}
	if levels[b.ID] != 1 || levels[c.ID] != 0 {
		t.Errorf("子树内部 level 应保持不变: %v", levels)
	}

	// 生产区的后代只剩自己
	ids, err := repo.DescendantIDs(ctx, a.ID)
	if err != nil {
		t.Fatalf("DescendantIDs() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != a.ID {
		t.Errorf("生产区后代 = %v, want 只有自己", ids)
	}

	// 再挂回去，祖先链恢复
	b.ParentID = a.ID
	if err := repo.UpdateWithClosure(ctx, b, true); err != nil {
		t.Fatalf("UpdateWithClosure() error = %v", err)
	}
	levels = ancestorLevels(t, repo, c.ID)
	if levels[a.ID] != 2 || levels[b.ID] != 1 {
		t.Errorf("挂回后祖先 level = %v, want 生产区=2 配怀舍=1", levels)
	}
}

func TestDeptRepo_DeleteWithClosure(t *testing.T) {
	db := setupDeptTestDB(t)
	repo := NewDeptRepository(db)
	ctx := context.Background()
	a, b, c := seedDeptChain(t, repo)

	// 删配怀舍，产房应一起软删
	if err := repo.DeleteWithClosure(ctx, b.ID); err != nil {
		t.Fatalf("DeleteWithClosure() error = %v", err)
	}

	for _, id := range []int64{b.ID, c.ID} {
		dept, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if dept == nil || !dept.IsDeleted {
			t.Errorf("部门 %d 应已软删", id)
		}
	}

	// 根部门不受影响
	root, _ := repo.GetByID(ctx, a.ID)
	if root == nil || root.IsDeleted {
		t.Errorf("生产区不应被删除")
	}

	// 子树的闭包行全部清掉
	for _, id := range []int64{b.ID, c.ID} {
		rows, _ := repo.ClosureRows(ctx, id)
		if len(rows) != 0 {
			t.Errorf("部门 %d 闭包行残留 %d 条", id, len(rows))
		}
	}

	// 列表也不再返回软删行
	depts, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(depts) != 1 || depts[0].ID != a.ID {
		t.Errorf("List() = %v, want 只剩生产区", depts)
	}
}

func TestDeptRepo_ListOrder(t *testing.T) {
	db := setupDeptTestDB(t)
	repo := NewDeptRepository(db)
	ctx := context.Background()

	repo.CreateWithClosure(ctx, &model.Dept{Name: "育肥舍", Order: 2})
	repo.CreateWithClosure(ctx, &model.Dept{Name: "保育舍", Order: 1})

	depts, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(depts) != 2 || depts[0].Name != "保育舍" {
		t.Errorf("List() 应按 order 排序, got %v", depts)
	}
}
