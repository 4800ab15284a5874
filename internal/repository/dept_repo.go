package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pigfarm_admin_v1/internal/model"
)

// ==================== DeptRepository 部门仓库 ====================

// DeptRepository 部门仓库接口
// 所有写操作都顺带维护闭包表：每个部门始终有 level=0 的自指行，
// 任意可达的祖先-后代对有一条 level=路径长度 的闭包行
type DeptRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Dept, error)
	GetByName(ctx context.Context, name string) (*model.Dept, error)
	List(ctx context.Context, name string) ([]model.Dept, error)
	CreateWithClosure(ctx context.Context, dept *model.Dept) error
	UpdateWithClosure(ctx context.Context, dept *model.Dept, parentChanged bool) error
	DeleteWithClosure(ctx context.Context, id int64) error
	DescendantIDs(ctx context.Context, ancestor int64) ([]int64, error)
	ClosureRows(ctx context.Context, descendant int64) ([]model.DeptClosure, error)
}

type deptRepository struct {
	db *gorm.DB
}

// NewDeptRepository 创建部门仓库
func NewDeptRepository(db *gorm.DB) DeptRepository {
	return &deptRepository{db: db}
}

// GetByID 根据 ID 获取部门
func (r *deptRepository) GetByID(ctx context.Context, id int64) (*model.Dept, error) {
	var dept model.Dept
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// GetByName 根据名称获取部门（含已软删的，用于查重）
func (r *deptRepository) GetByName(ctx context.Context, name string) (*model.Dept, error) {
	var dept model.Dept
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dept).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// List 部门列表，排除软删行，按 order 排序
func (r *deptRepository) List(ctx context.Context, name string) ([]model.Dept, error) {
	query := r.db.WithContext(ctx).Model(&model.Dept{}).Where("is_deleted = ?", false)
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var depts []model.Dept
	err := query.Order("\"order\" ASC, id ASC").Find(&depts).Error
	return depts, err
}

// CreateWithClosure 创建部门并补齐闭包行
func (r *deptRepository) CreateWithClosure(ctx context.Context, dept *model.Dept) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dept).Error; err != nil {
			return err
		}
		return insertClosureRows(tx, dept.ID, dept.ParentID)
	})
}

// insertClosureRows 为新挂到 parentID 下的 deptID 写闭包行：
// 自指行 + 父节点的每个祖先各一行（level 顺延 +1）
func insertClosureRows(tx *gorm.DB, deptID, parentID int64) error {
	rows := []model.DeptClosure{
		{Ancestor: deptID, Descendant: deptID, Level: 0},
	}
	if parentID != 0 {
		var parentAncestors []model.DeptClosure
		if err := tx.Where("descendant = ?", parentID).Find(&parentAncestors).Error; err != nil {
			return err
		}
		for _, row := range parentAncestors {
			rows = append(rows, model.DeptClosure{
				Ancestor:   row.Ancestor,
				Descendant: deptID,
				Level:      row.Level + 1,
			})
		}
	}
	return tx.Create(&rows).Error
}

// UpdateWithClosure 更新部门；父节点变化时整棵子树重建闭包行
func (r *deptRepository) UpdateWithClosure(ctx context.Context, dept *model.Dept, parentChanged bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Dept{}).Where("id = ?", dept.ID).Updates(map[string]any{
			"name":      dept.Name,
			"desc":      dept.Desc,
			"order":     dept.Order,
			"parent_id": dept.ParentID,
		}).Error; err != nil {
			return err
		}
		if !parentChanged {
			return nil
		}
		return moveSubtree(tx, dept.ID, dept.ParentID)
	})
}

// moveSubtree 闭包表迁移：
// 1. 取出以 deptID 为根的子树（子树内相对 level 保持不变）
// 2. 删掉子树成员与子树外祖先之间的旧闭包行
// 3. 按新父节点的祖先链重新建行
func moveSubtree(tx *gorm.DB, deptID, newParentID int64) error {
	var subtree []model.DeptClosure
	if err := tx.Where("ancestor = ?", deptID).Find(&subtree).Error; err != nil {
		return err
	}

	subtreeIDs := make([]int64, 0, len(subtree))
	for _, row := range subtree {
		subtreeIDs = append(subtreeIDs, row.Descendant)
	}

	if err := tx.
		Where("descendant IN ? AND ancestor NOT IN ?", subtreeIDs, subtreeIDs).
		Delete(&model.DeptClosure{}).Error; err != nil {
		return err
	}

	if newParentID == 0 {
		return nil
	}

	var newAncestors []model.DeptClosure
	if err := tx.Where("descendant = ?", newParentID).Find(&newAncestors).Error; err != nil {
		return err
	}

	var rows []model.DeptClosure
	for _, anc := range newAncestors {
		for _, node := range subtree {
			rows = append(rows, model.DeptClosure{
				Ancestor:   anc.Ancestor,
				Descendant: node.Descendant,
				Level:      anc.Level + 1 + node.Level,
			})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// DeleteWithClosure 软删部门及其全部后代，并清掉相关闭包行
func (r *deptRepository) DeleteWithClosure(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []model.DeptClosure
		if err := tx.Where("ancestor = ?", id).Find(&rows).Error; err != nil {
			return err
		}
		ids := make([]int64, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.Descendant)
		}

		if err := tx.Model(&model.Dept{}).Where("id IN ?", ids).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.
			Where("descendant IN ? OR ancestor IN ?", ids, ids).
			Delete(&model.DeptClosure{}).Error
	})
}

// DescendantIDs 取某部门的全部后代 ID（含自身）
func (r *deptRepository) DescendantIDs(ctx context.Context, ancestor int64) ([]int64, error) {
	var rows []model.DeptClosure
	err := r.db.WithContext(ctx).
		Where("ancestor = ?", ancestor).
		Order("level ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Descendant)
	}
	return ids, nil
}

// ClosureRows 取某节点的祖先闭包行（含自指行），测试与迁移校验用
func (r *deptRepository) ClosureRows(ctx context.Context, descendant int64) ([]model.DeptClosure, error) {
	var rows []model.DeptClosure
	err := r.db.WithContext(ctx).
		Where("descendant = ?", descendant).
		Order("level ASC").
		Find(&rows).Error
	return rows, err
}
