package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pigfarm_admin_v1/internal/model"
)

// ==================== UserFilter 查询条件组合 ====================

// UserFilter 用户列表过滤条件
// 字符串条件为空串时不参与过滤，非空时做子串匹配；
// DeptID 为 nil 时不参与过滤，非 nil（包括 0）时做精确匹配。
// 所有条件之间只做 AND 组合。
type UserFilter struct {
	Username string
	Email    string
	DeptID   *int64

	// 猪场管理相关
	SowNumber     string
	EarTag        string
	PenNumber     string
	FeederNumber  string
	PigBreed      string
	FeedingStatus string
	FeederStatus  string

	Page     int
	PageSize int
}

// Apply 把过滤条件折叠到查询上，纯组合，无副作用
func (f UserFilter) Apply(db *gorm.DB) *gorm.DB {
	contains := map[string]string{
		"username":       f.Username,
		"email":          f.Email,
		"sow_number":     f.SowNumber,
		"ear_tag":        f.EarTag,
		"pen_number":     f.PenNumber,
		"feeder_number":  f.FeederNumber,
		"pig_breed":      f.PigBreed,
		"feeding_status": f.FeedingStatus,
		"feeder_status":  f.FeederStatus,
	}
	// map 遍历顺序不定，但条件全是 AND，组合结果与顺序无关
	for column, value := range contains {
		if value != "" {
			db = db.Where(column+" LIKE ?", "%"+value+"%")
		}
	}
	if f.DeptID != nil {
		db = db.Where("dept_id = ?", *f.DeptID)
	}
	return db
}

// ==================== UserRepository 用户仓库 ====================

// UserRepository 用户仓库接口
type UserRepository interface {
	CreateWithRoles(ctx context.Context, user *model.User, roleIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateWithRoles(ctx context.Context, id int64, fields map[string]any, roleIDs []int64) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter UserFilter) ([]model.User, int64, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithRoles 创建用户并设置角色集合，同一事务内完成
func (r *userRepository) CreateWithRoles(ctx context.Context, user *model.User, roleIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return replaceRoles(tx, user.ID, roleIDs)
	})
}

// GetByID 根据 ID 获取用户
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateWithRoles 部分更新标量字段并整体替换角色集合
// 两步在一个事务内，避免出现改了一半的可见状态
func (r *userRepository) UpdateWithRoles(ctx context.Context, id int64, fields map[string]any, roleIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		return replaceRoles(tx, id, roleIDs)
	})
}

// replaceRoles 角色集合整体替换：移除不在新列表里的，补上新增的
func replaceRoles(tx *gorm.DB, userID int64, roleIDs []int64) error {
	user := model.User{BaseModel: model.BaseModel{ID: userID}}
	assoc := tx.Model(&user).Association("Roles")

	if len(roleIDs) == 0 {
		return assoc.Clear()
	}

	var roles []model.Role
	if err := tx.Where("id IN ?", roleIDs).Find(&roles).Error; err != nil {
		return err
	}
	return assoc.Replace(toAnySlice(roles)...)
}

// UpdatePassword 更新密码
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("password", hashedPassword).Error
}

// Delete 删除用户，连同清理 user_roles 关联行，避免悬挂关联
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := model.User{BaseModel: model.BaseModel{ID: id}}
		if err := tx.Model(&user).Association("Roles").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}

// List 用户分页列表
// 固定按 id 升序，保证翻页结果可复现
func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]model.User, int64, error) {
	query := filter.Apply(r.db.WithContext(ctx).Model(&model.User{}))

	// 统计总数（分页前）
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

	var users []model.User
	err := query.
		Preload("Roles").
		Order("id ASC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&users).Error

	return users, total, err
}

// UpdateLastLogin 更新最后登录时间
func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
