package service

import (
	"context"
	"errors"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

// ==================== MenuService 菜单服务 ====================

// MenuService 菜单服务
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService 创建菜单服务
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListTree 菜单树，按 parent_id 组装
func (s *MenuService) ListTree(ctx context.Context) ([]*dto.MenuInfo, error) {
	menus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make(map[int64]*dto.MenuInfo, len(menus))
	for i := range menus {
		nodes[menus[i].ID] = toMenuInfo(&menus[i])
	}

	var roots []*dto.MenuInfo
	for i := range menus {
		node := nodes[menus[i].ID]
		if parent, ok := nodes[menus[i].ParentID]; ok && menus[i].ParentID != menus[i].ID {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots, nil
}

// Get 菜单详情
func (s *MenuService) Get(ctx context.Context, id int64) (*dto.MenuInfo, error) {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}
	return toMenuInfo(menu), nil
}

// Create 创建菜单
func (s *MenuService) Create(ctx context.Context, req *dto.CreateMenuRequest) error {
	menu := &model.Menu{
		Name:      req.Name,
		MenuType:  model.MenuType(req.MenuType),
		Icon:      req.Icon,
		Path:      req.Path,
		Order:     req.Order,
		ParentID:  req.ParentID,
		IsHidden:  req.IsHidden,
		Component: req.Component,
		Keepalive: true,
		Redirect:  req.Redirect,
		Remark:    req.Remark,
	}
	if req.Keepalive != nil {
		menu.Keepalive = *req.Keepalive
	}
	return s.menuRepo.Create(ctx, menu)
}

// Update 更新菜单
func (s *MenuService) Update(ctx context.Context, req *dto.UpdateMenuRequest) error {
	menu, err := s.menuRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if menu == nil {
		return ErrMenuNotFound
	}

	menu.Name = req.Name
	menu.MenuType = model.MenuType(req.MenuType)
	menu.Icon = req.Icon
	menu.Path = req.Path
	menu.Order = req.Order
	menu.ParentID = req.ParentID
	menu.IsHidden = req.IsHidden
	menu.Component = req.Component
	if req.Keepalive != nil {
		menu.Keepalive = *req.Keepalive
	}
	menu.Redirect = req.Redirect
	menu.Remark = req.Remark
	return s.menuRepo.Update(ctx, menu)
}

// Delete 删除菜单，存在子菜单时拒绝
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if menu == nil {
		return ErrMenuNotFound
	}

	children, err := s.menuRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrMenuHasChildren
	}
	return s.menuRepo.Delete(ctx, id)
}

// toMenuInfo 转换为 DTO
func toMenuInfo(menu *model.Menu) *dto.MenuInfo {
	return &dto.MenuInfo{
		ID:        menu.ID,
		Name:      menu.Name,
		MenuType:  string(menu.MenuType),
		Icon:      menu.Icon,
		Path:      menu.Path,
		Order:     menu.Order,
		ParentID:  menu.ParentID,
		IsHidden:  menu.IsHidden,
		Component: menu.Component,
		Keepalive: menu.Keepalive,
		Redirect:  menu.Redirect,
		Remark:    menu.Remark,
		CreatedAt: menu.CreatedAt,
		UpdatedAt: menu.UpdatedAt,
		Children:  []*dto.MenuInfo{},
	}
}

// ==================== 错误定义 ====================

var (
	ErrMenuNotFound    = errors.New("菜单不存在")
	ErrMenuHasChildren = errors.New("存在子菜单，无法删除")
)
