package service

import (
	"context"
	"errors"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

// ==================== ApiService 接口资源服务 ====================

// RouteItem 框架里实际注册的一条路由，刷新比对用
type RouteItem struct {
	Method  string
	Path    string
	Summary string
	Tags    string
}

// ApiService 接口资源服务
type ApiService struct {
	apiRepo repository.ApiRepository
}

// NewApiService 创建接口资源服务
func NewApiService(apiRepo repository.ApiRepository) *ApiService {
	return &ApiService{apiRepo: apiRepo}
}

// List API 分页列表
func (s *ApiService) List(ctx context.Context, req *dto.ApiListRequest) ([]model.Api, int64, error) {
	return s.apiRepo.List(ctx, repository.ApiListFilter{
		Path:     req.Path,
		Summary:  req.Summary,
		Tags:     req.Tags,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

// Create 创建 API
func (s *ApiService) Create(ctx context.Context, req *dto.CreateApiRequest) error {
	return s.apiRepo.Create(ctx, &model.Api{
		Path:    req.Path,
		Method:  model.MethodType(req.Method),
		Summary: req.Summary,
		Tags:    req.Tags,
	})
}

// Update 更新 API
func (s *ApiService) Update(ctx context.Context, req *dto.UpdateApiRequest) error {
	api, err := s.apiRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if api == nil {
		return ErrApiNotFound
	}

	api.Path = req.Path
	api.Method = model.MethodType(req.Method)
	api.Summary = req.Summary
	api.Tags = req.Tags
	return s.apiRepo.Update(ctx, api)
}

// Delete 删除 API
func (s *ApiService) Delete(ctx context.Context, id int64) error {
	api, err := s.apiRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if api == nil {
		return ErrApiNotFound
	}
	return s.apiRepo.Delete(ctx, id)
}

// Refresh 按实际注册的路由对账：补缺、删多余
func (s *ApiService) Refresh(ctx context.Context, routes []RouteItem) error {
	existing, err := s.apiRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	registered := make(map[string]RouteItem, len(routes))
	for _, route := range routes {
		registered[route.Method+" "+route.Path] = route
	}

	stored := make(map[string]model.Api, len(existing))
	var stale []int64
	for _, api := range existing {
		key := string(api.Method) + " " + api.Path
		stored[key] = api
		if _, ok := registered[key]; !ok {
			stale = append(stale, api.ID)
		}
	}

	var missing []model.Api
	for key, route := range registered {
		if _, ok := stored[key]; !ok {
			missing = append(missing, model.Api{
				Path:    route.Path,
				Method:  model.MethodType(route.Method),
				Summary: route.Summary,
				Tags:    route.Tags,
			})
		}
	}

	if err := s.apiRepo.DeleteByIDs(ctx, stale); err != nil {
		return err
	}
	return s.apiRepo.BatchCreate(ctx, missing)
}

// ==================== 错误定义 ====================

var ErrApiNotFound = errors.New("接口不存在")
