package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pigfarm_admin_v1/internal/model"
)

// ==================== ApiRepository 接口资源仓库 ====================

// ApiListFilter API 列表过滤条件
type ApiListFilter struct {
	Path     string
	Summary  string
	Tags     string
	Page     int
	PageSize int
}

// ApiRepository 接口资源仓库接口
type ApiRepository interface {
	Create(ctx context.Context, api *model.Api) error
	GetByID(ctx context.Context, id int64) (*model.Api, error)
	Update(ctx context.Context, api *model.Api) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ApiListFilter) ([]model.Api, int64, error)
	FindAll(ctx context.Context) ([]model.Api, error)
	BatchCreate(ctx context.Context, apis []model.Api) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type apiRepository struct {
	db *gorm.DB
}

// NewApiRepository 创建接口资源仓库
func NewApiRepository(db *gorm.DB) ApiRepository {
	return &apiRepository{db: db}
}

// Create 创建 API
func (r *apiRepository) Create(ctx context.Context, api *model.Api) error {
	return r.db.WithContext(ctx).Create(api).Error
}

// GetByID 根据 ID 获取 API
func (r *apiRepository) GetByID(ctx context.Context, id int64) (*model.Api, error) {
	var api model.Api
	err := r.db.WithContext(ctx).First(&api, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &api, nil
}

// Update 更新 API
func (r *apiRepository) Update(ctx context.Context, api *model.Api) error {
	return r.db.WithContext(ctx).Model(&model.Api{}).Where("id = ?", api.ID).Updates(map[string]any{
		"path":    api.Path,
		"method":  api.Method,
		"summary": api.Summary,
		"tags":    api.Tags,
	}).Error
}

// Delete 删除 API
func (r *apiRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Api{}, id).Error
}

// List API 分页列表
func (r *apiRepository) List(ctx context.Context, filter ApiListFilter) ([]model.Api, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Api{})
	if filter.Path != "" {
		query = query.Where("path LIKE ?", "%"+filter.Path+"%")
	}
	if filter.Summary != "" {
		query = query.Where("summary LIKE ?", "%"+filter.Summary+"%")
	}
	if filter.Tags != "" {
		query = query.Where("tags LIKE ?", "%"+filter.Tags+"%")
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

	var apis []model.Api
	err := query.Order("id ASC").Offset(offset).Limit(filter.PageSize).Find(&apis).Error
	return apis, total, err
}

// FindAll 获取全部 API，刷新比对用
func (r *apiRepository) FindAll(ctx context.Context) ([]model.Api, error) {
	var apis []model.Api
	err := r.db.WithContext(ctx).Find(&apis).Error
	return apis, err
}

// BatchCreate 批量创建
func (r *apiRepository) BatchCreate(ctx context.Context, apis []model.Api) error {
	if len(apis) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&apis).Error
}

// DeleteByIDs 批量删除
func (r *apiRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.Api{}, ids).Error
}
