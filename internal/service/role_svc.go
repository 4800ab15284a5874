package service

import (
	"context"
	"errors"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

// ==================== RoleService 角色服务 ====================

// RoleService 角色服务
type RoleService struct {
	roleRepo repository.RoleRepository
}

// NewRoleService 创建角色服务
func NewRoleService(roleRepo repository.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// List 角色分页列表
func (s *RoleService) List(ctx context.Context, req *dto.RoleListRequest) ([]dto.RoleInfo, int64, error) {
	roles, total, err := s.roleRepo.List(ctx, repository.RoleListFilter{
		Name:     req.RoleName,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	infos := make([]dto.RoleInfo, 0, len(roles))
	for i := range roles {
		infos = append(infos, toRoleInfo(&roles[i]))
	}
	return infos, total, nil
}

// Get 角色详情（带授权的菜单与接口）
func (s *RoleService) Get(ctx context.Context, id int64) (*model.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

// Create 创建角色，名称重复返回冲突
func (s *RoleService) Create(ctx context.Context, req *dto.CreateRoleRequest) error {
	existing, err := s.roleRepo.GetByName(ctx, req.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrRoleNameExists
	}
	return s.roleRepo.Create(ctx, &model.Role{Name: req.Name, Desc: req.Desc})
}

// Update 更新角色
func (s *RoleService) Update(ctx context.Context, req *dto.UpdateRoleRequest) error {
	role, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	role.Name = req.Name
	role.Desc = req.Desc
	return s.roleRepo.Update(ctx, role)
}

// Delete 删除角色
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	return s.roleRepo.Delete(ctx, id)
}

// UpdateAuthorized 整体替换角色的菜单与接口授权
func (s *RoleService) UpdateAuthorized(ctx context.Context, req *dto.UpdateRoleAuthorizedRequest) error {
	role, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	return s.roleRepo.ReplaceAuthorized(ctx, req.ID, req.MenuIDs, req.ApiIDs)
}

// toRoleInfo 转换为 DTO
func toRoleInfo(role *model.Role) dto.RoleInfo {
	return dto.RoleInfo{
		ID:        role.ID,
		Name:      role.Name,
		Desc:      role.Desc,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}

// ==================== 错误定义 ====================

var (
	ErrRoleNotFound   = errors.New("角色不存在")
	ErrRoleNameExists = errors.New("角色名称已存在")
)
