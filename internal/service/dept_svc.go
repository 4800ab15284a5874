package service

import (
	"context"
	"errors"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

// ==================== DeptService 部门服务 ====================

// DeptService 部门服务，负责层级树与闭包表的一致性
type DeptService struct {
	deptRepo repository.DeptRepository
}

// NewDeptService 创建部门服务
func NewDeptService(deptRepo repository.DeptRepository) *DeptService {
	return &DeptService{deptRepo: deptRepo}
}

// ListTree 部门树
// 按名称过滤后组装；父节点被过滤掉的子树提升为根
func (s *DeptService) ListTree(ctx context.Context, name string) ([]*dto.DeptTreeNode, error) {
	depts, err := s.deptRepo.List(ctx, name)
	if err != nil {
		return nil, err
	}

	nodes := make(map[int64]*dto.DeptTreeNode, len(depts))
	for i := range depts {
		nodes[depts[i].ID] = &dto.DeptTreeNode{
			DeptInfo: toDeptInfo(&depts[i]),
			Children: []*dto.DeptTreeNode{},
		}
	}

	var roots []*dto.DeptTreeNode
	for i := range depts {
		node := nodes[depts[i].ID]
		if parent, ok := nodes[depts[i].ParentID]; ok && depts[i].ParentID != depts[i].ID {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots, nil
}

// Get 部门详情
func (s *DeptService) Get(ctx context.Context, id int64) (*dto.DeptInfo, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, ErrDeptNotFound
	}
	info := toDeptInfo(dept)
	return &info, nil
}

// Create 创建部门，同步写入闭包行
func (s *DeptService) Create(ctx context.Context, req *dto.CreateDeptRequest) error {
	existing, err := s.deptRepo.GetByName(ctx, req.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDeptNameExists
	}

	if req.ParentID != 0 {
		parent, err := s.deptRepo.GetByID(ctx, req.ParentID)
		if err != nil {
			return err
		}
		if parent == nil || parent.IsDeleted {
			return ErrDeptNotFound
		}
	}

	dept := &model.Dept{
		Name:     req.Name,
		Desc:     req.Desc,
		Order:    req.Order,
		ParentID: req.ParentID,
	}
	return s.deptRepo.CreateWithClosure(ctx, dept)
}

// Update 更新部门；父节点变化时校验不能挂到自己的后代下面
func (s *DeptService) Update(ctx context.Context, req *dto.UpdateDeptRequest) error {
	dept, err := s.deptRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if dept == nil {
		return ErrDeptNotFound
	}

	parentChanged := dept.ParentID != req.ParentID
	if parentChanged && req.ParentID != 0 {
		parent, err := s.deptRepo.GetByID(ctx, req.ParentID)
		if err != nil {
			return err
		}
		if parent == nil || parent.IsDeleted {
			return ErrDeptNotFound
		}

		// 新父节点落在自己的子树里会造成环
		descendants, err := s.deptRepo.DescendantIDs(ctx, req.ID)
		if err != nil {
			return err
		}
		for _, id := range descendants {
			if id == req.ParentID {
				return ErrDeptMoveToDescendant
			}
		}
	}

	dept.Name = req.Name
	dept.Desc = req.Desc
	dept.Order = req.Order
	dept.ParentID = req.ParentID
	return s.deptRepo.UpdateWithClosure(ctx, dept, parentChanged)
}

// Delete 软删部门及其后代
func (s *DeptService) Delete(ctx context.Context, id int64) error {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dept == nil || dept.IsDeleted {
		return ErrDeptNotFound
	}
	return s.deptRepo.DeleteWithClosure(ctx, id)
}

// toDeptInfo 转换为 DTO
func toDeptInfo(dept *model.Dept) dto.DeptInfo {
	return dto.DeptInfo{
		ID:        dept.ID,
		Name:      dept.Name,
		Desc:      dept.Desc,
		Order:     dept.Order,
		ParentID:  dept.ParentID,
		CreatedAt: dept.CreatedAt,
		UpdatedAt: dept.UpdatedAt,
	}
}

// ==================== 错误定义 ====================

var (
	ErrDeptNotFound         = errors.New("部门不存在")
	ErrDeptNameExists       = errors.New("部门名称已存在")
	ErrDeptMoveToDescendant = errors.New("不能把部门移动到自己的子部门下")
)
