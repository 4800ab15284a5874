package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

// DefaultPassword 重置密码时使用的默认口令
const DefaultPassword = "123456"

// ==================== UserService 用户服务 ====================

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
	deptRepo repository.DeptRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, deptRepo repository.DeptRepository) *UserService {
	return &UserService{userRepo: userRepo, deptRepo: deptRepo}
}

// ==================== 查询 ====================

// List 用户分页列表
// 返回项里密码被排除，角色内嵌为数组，dept_id 被替换为内嵌部门对象
func (s *UserService) List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserListItem, int64, error) {
	users, total, err := s.userRepo.List(ctx, repository.UserFilter{
		Username:      req.Username,
		Email:         req.Email,
		DeptID:        req.DeptID,
		SowNumber:     req.SowNumber,
		EarTag:        req.EarTag,
		PenNumber:     req.PenNumber,
		FeederNumber:  req.FeederNumber,
		PigBreed:      req.PigBreed,
		FeedingStatus: req.FeedingStatus,
		FeederStatus:  req.FeederStatus,
		Page:          req.Page,
		PageSize:      req.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	// 同一页里多个用户常属于同一部门，按 ID 缓存一次查询结果
	deptCache := make(map[int64]*model.Dept)

	items := make([]dto.UserListItem, 0, len(users))
	for i := range users {
		item, err := s.toListItem(ctx, &users[i], deptCache)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, nil
}

// toListItem 组装列表项，完成部门反规范化
func (s *UserService) toListItem(ctx context.Context, user *model.User, deptCache map[int64]*model.Dept) (dto.UserListItem, error) {
	item := dto.UserListItem{
		ID:            user.ID,
		Username:      user.Username,
		Alias:         user.Alias,
		Email:         user.Email,
		Phone:         user.Phone,
		IsActive:      user.IsActive,
		IsSuperuser:   user.IsSuperuser,
		LastLogin:     user.LastLogin,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
		FeedingFields: user.FeedingFields,
	}

	item.Roles = make([]dto.RoleInfo, 0, len(user.Roles))
	for _, role := range user.Roles {
		item.Roles = append(item.Roles, toRoleInfo(&role))
	}

	// 无部门时内嵌空对象
	item.Dept = struct{}{}
	if user.DeptID != nil && *user.DeptID != 0 {
		dept, ok := deptCache[*user.DeptID]
		if !ok {
			var err error
			dept, err = s.deptRepo.GetByID(ctx, *user.DeptID)
			if err != nil {
				return item, err
			}
			deptCache[*user.DeptID] = dept
		}
		if dept != nil {
			item.Dept = toDeptInfo(dept)
		}
	}
	return item, nil
}

// Get 用户详情
// 单查不内嵌角色，保留原始 dept_id（与列表的不对称是有意保留的既有行为）
func (s *UserService) Get(ctx context.Context, userID int64) (*dto.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.UserDetail{
		ID:            user.ID,
		Username:      user.Username,
		Alias:         user.Alias,
		Email:         user.Email,
		Phone:         user.Phone,
		IsActive:      user.IsActive,
		IsSuperuser:   user.IsSuperuser,
		LastLogin:     user.LastLogin,
		DeptID:        user.DeptID,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
		FeedingFields: user.FeedingFields,
	}, nil
}

// ==================== 写入 ====================

// Create 创建用户
// 邮箱重复时返回 ErrEmailExists；建号与角色设置在同一事务里
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) error {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:      req.Username,
		Alias:         req.Alias,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      string(hashedPassword),
		IsActive:      true,
		DeptID:        req.DeptID,
		FeedingFields: req.FeedingFields,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsSuperuser != nil {
		user.IsSuperuser = *req.IsSuperuser
	}

	return s.userRepo.CreateWithRoles(ctx, user, req.RoleIDs)
}

// Update 更新用户
// 只更新请求里出现的字段，角色集合整体替换，两步同一事务。
// 邮箱/用户名不做唯一性复查，维持既有行为，重复时由数据库唯一约束兜底
func (s *UserService) Update(ctx context.Context, req *dto.UpdateUserRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	fields := make(map[string]any)
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Alias != nil {
		fields["alias"] = *req.Alias
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.IsSuperuser != nil {
		fields["is_superuser"] = *req.IsSuperuser
	}
	if req.DeptID != nil {
		fields["dept_id"] = *req.DeptID
	}
	collectFeedingUpdates(req.FeedingFields, fields)

	return s.userRepo.UpdateWithRoles(ctx, req.ID, fields, req.RoleIDs)
}

// collectFeedingUpdates 把请求里出现的饲喂档案字段收进更新集合
func collectFeedingUpdates(f model.FeedingFields, fields map[string]any) {
	if f.SowNumber != nil {
		fields["sow_number"] = *f.SowNumber
	}
	if f.EarTag != nil {
		fields["ear_tag"] = *f.EarTag
	}
	if f.PigBreed != nil {
		fields["pig_breed"] = *f.PigBreed
	}
	if f.BackfatThickness != nil {
		fields["backfat_thickness"] = *f.BackfatThickness
	}
	if f.Parity != nil {
		fields["parity"] = *f.Parity
	}
	if f.GestationDays != nil {
		fields["gestation_days"] = *f.GestationDays
	}
	if f.PenNumber != nil {
		fields["pen_number"] = *f.PenNumber
	}
	if f.FeedIntake != nil {
		fields["feed_intake"] = *f.FeedIntake
	}
	if f.FeederNumber != nil {
		fields["feeder_number"] = *f.FeederNumber
	}
	if f.PredictedFeed != nil {
		fields["predicted_feed"] = *f.PredictedFeed
	}
	if f.SetFeed != nil {
		fields["set_feed"] = *f.SetFeed
	}
	if f.ActualFeed != nil {
		fields["actual_feed"] = *f.ActualFeed
	}
	if f.StartTime != nil {
		fields["start_time"] = *f.StartTime
	}
	if f.EndTime != nil {
		fields["end_time"] = *f.EndTime
	}
	if f.SetFeedAmount != nil {
		fields["set_feed_amount"] = *f.SetFeedAmount
	}
	if f.CurrentFeedAmount != nil {
		fields["current_feed_amount"] = *f.CurrentFeedAmount
	}
	if f.LastFeedTime != nil {
		fields["last_feed_time"] = *f.LastFeedTime
	}
	if f.ControlSwitch != nil {
		fields["control_switch"] = *f.ControlSwitch
	}
	if f.FeederStatus != nil {
		fields["feeder_status"] = *f.FeederStatus
	}
	if f.Date != nil {
		fields["date"] = *f.Date
	}
	if f.FeedingStatus != nil {
		fields["feeding_status"] = *f.FeedingStatus
	}
	if f.FeedingDate != nil {
		fields["feeding_date"] = *f.FeedingDate
	}
	if f.IsNormal != nil {
		fields["is_normal"] = *f.IsNormal
	}
	if f.LastSetTime != nil {
		fields["last_set_time"] = *f.LastSetTime
	}
	if f.Status != nil {
		fields["status"] = *f.Status
	}
}

// Delete 删除用户
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, userID)
}

// ResetPassword 重置密码为默认口令
func (s *UserService) ResetPassword(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword))
}

// ==================== 错误定义 ====================

var (
	ErrUserNotFound = errors.New("用户不存在")
	ErrEmailExists  = errors.New("该邮箱已存在")
)
