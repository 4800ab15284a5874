package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pigfarm_admin_v1/internal/model"
)

// ==================== MenuRepository 菜单仓库 ====================

// MenuRepository 菜单仓库接口
type MenuRepository interface {
	Create(ctx context.Context, menu *model.Menu) error
	GetByID(ctx context.Context, id int64) (*model.Menu, error)
	Update(ctx context.Context, menu *model.Menu) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]model.Menu, error)
	CountChildren(ctx context.Context, parentID int64) (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository 创建菜单仓库
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// Create 创建菜单
func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

// GetByID 根据 ID 获取菜单
func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.Menu, error) {
	var menu model.Menu
	err := r.db.WithContext(ctx).First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Update 更新菜单
func (r *menuRepository) Update(ctx context.Context, menu *model.Menu) error {
	return r.db.WithContext(ctx).Model(&model.Menu{}).Where("id = ?", menu.ID).Updates(map[string]any{
		"name":      menu.Name,
		"menu_type": menu.MenuType,
		"icon":      menu.Icon,
		"path":      menu.Path,
		"order":     menu.Order,
		"parent_id": menu.ParentID,
		"is_hidden": menu.IsHidden,
		"component": menu.Component,
		"keepalive": menu.Keepalive,
		"redirect":  menu.Redirect,
		"remark":    menu.Remark,
	}).Error
}

// Delete 删除菜单
func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Menu{}, id).Error
}

// ListAll 全部菜单，按 order 排序，树由服务层组装
func (r *menuRepository) ListAll(ctx context.Context) ([]model.Menu, error) {
	var menus []model.Menu
	err := r.db.WithContext(ctx).Order("\"order\" ASC, id ASC").Find(&menus).Error
	return menus, err
}

// CountChildren 统计子菜单数量，删除前校验用
func (r *menuRepository) CountChildren(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Menu{}).Where("parent_id = ?", parentID).Count(&count).Error
	return count, err
}
