package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pigfarm_admin_v1/internal/model"
)

// ==================== RoleRepository 角色仓库 ====================

// RoleListFilter 角色列表过滤条件
type RoleListFilter struct {
	Name     string
	Page     int
	PageSize int
}

// RoleRepository 角色仓库接口
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id int64) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter RoleListFilter) ([]model.Role, int64, error)
	ReplaceAuthorized(ctx context.Context, roleID int64, menuIDs, apiIDs []int64) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色仓库
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Create 创建角色
func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// GetByID 根据 ID 获取角色（带菜单与接口授权）
func (r *roleRepository) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Preload("Menus").
		Preload("Apis").
		First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByName 根据名称获取角色
func (r *roleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByIDs 批量获取角色
func (r *roleRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Role, error) {
	var roles []model.Role
	if len(ids) == 0 {
		return roles, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&roles).Error
	return roles, err
}

// Update 更新角色
func (r *roleRepository) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Model(&model.Role{}).Where("id = ?", role.ID).Updates(map[string]any{
		"name": role.Name,
		"desc": role.Desc,
	}).Error
}

// Delete 删除角色，连同清理授权关联行
func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		role := model.Role{BaseModel: model.BaseModel{ID: id}}
		if err := tx.Model(&role).Association("Menus").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&role).Association("Apis").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Role{}, id).Error
	})
}

// List 角色分页列表
func (r *roleRepository) List(ctx context.Context, filter RoleListFilter) ([]model.Role, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Role{})
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
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

	var roles []model.Role
	err := query.Order("id ASC").Offset(offset).Limit(filter.PageSize).Find(&roles).Error
	return roles, total, err
}

// ReplaceAuthorized 整体替换角色的菜单与接口授权
func (r *roleRepository) ReplaceAuthorized(ctx context.Context, roleID int64, menuIDs, apiIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		role := model.Role{BaseModel: model.BaseModel{ID: roleID}}

		if len(menuIDs) == 0 {
			if err := tx.Model(&role).Association("Menus").Clear(); err != nil {
				return err
			}
		} else {
			var menus []model.Menu
			if err := tx.Where("id IN ?", menuIDs).Find(&menus).Error; err != nil {
				return err
			}
			if err := tx.Model(&role).Association("Menus").Replace(toAnySlice(menus)...); err != nil {
				return err
			}
		}

		if len(apiIDs) == 0 {
			return tx.Model(&role).Association("Apis").Clear()
		}
		var apis []model.Api
		if err := tx.Where("id IN ?", apiIDs).Find(&apis).Error; err != nil {
			return err
		}
		return tx.Model(&role).Association("Apis").Replace(toAnySlice(apis)...)
	})
}

// toAnySlice 把模型切片转成 Association.Replace 需要的变参形式
func toAnySlice[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
