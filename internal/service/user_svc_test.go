package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
)

func setupUserSvcTest(t *testing.T) (*UserService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	err = db.AutoMigrate(&model.User{}, &model.Role{}, &model.Dept{}, &model.DeptClosure{})
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	svc := NewUserService(repository.NewUserRepository(db), repository.NewDeptRepository(db))
	return svc, db
}

func strPtr(s string) *string { return &s }

// findUserByEmail 测试辅助，直接走库拿行
func findUserByEmail(t *testing.T, db *gorm.DB, email string) *model.User {
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("查询用户失败: %v", err)
	}
	return &user
}

func TestUserService_CreateAndGet(t *testing.T) {
	svc, db := setupUserSvcTest(t)
	ctx := context.Background()

	err := svc.Create(ctx, &dto.CreateUserRequest{
		Email:    "alice@farm.com",
		Username: "alice",
		Password: "secret123",
		Alias:    "小张",
		FeedingFields: model.FeedingFields{
			SowNumber: strPtr("S001"),
			PenNumber: strPtr("P1"),
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	row := findUserByEmail(t, db, "alice@farm.com")

	// 密码落库的是哈希，不是明文
	if row.Password == "secret123" || row.Password == "" {
		t.Errorf("密码未哈希存储")
	}
	// 未显式传 is_active 时默认启用
	if !row.IsActive {
		t.Errorf("is_active 默认值应为 true")
	}

	detail, err := svc.Get(ctx, row.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if detail.Username != "alice" || detail.Alias != "小张" {
		t.Errorf("Get() = %+v, want alice/小张", detail)
	}
	if detail.SowNumber == nil || *detail.SowNumber != "S001" {
		t.Errorf("饲喂档案字段未回读: %+v", detail.FeedingFields)
	}
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	svc, db := setupUserSvcTest(t)
	ctx := context.Background()

	req := &dto.CreateUserRequest{Email: "alice@farm.com", Username: "alice", Password: "secret123"}
	if err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	dup := &dto.CreateUserRequest{Email: "alice@farm.com", Username: "alice2", Password: "secret123"}
	if err := svc.Create(ctx, dup); !errors.Is(err, ErrEmailExists) {
		t.Errorf("重复邮箱 error = %v, want ErrEmailExists", err)
	}

	// 冲突的创建不落行
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Errorf("用户行数 = %d, want 1", count)
	}
}

func TestUserService_UpdatePartial(t *testing.T) {
	svc, db := setupUserSvcTest(t)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateUserRequest{
		Email:    "alice@farm.com",
		Username: "alice",
		Password: "secret123",
		Alias:    "小张",
		Phone:    "13800000000",
		FeedingFields: model.FeedingFields{
			SowNumber: strPtr("S001"),
			PenNumber: strPtr("P1"),
		},
	})
	row := findUserByEmail(t, db, "alice@farm.com")

	// 只改电话和栏号，其余字段不该动
	err := svc.Update(ctx, &dto.UpdateUserRequest{
		ID:            row.ID,
		Phone:         strPtr("13900000000"),
		FeedingFields: model.FeedingFields{PenNumber: strPtr("P9")},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	detail, err := svc.Get(ctx, row.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if detail.Phone != "13900000000" {
		t.Errorf("Phone = %s, want 13900000000", detail.Phone)
	}
	if detail.PenNumber == nil || *detail.PenNumber != "P9" {
		t.Errorf("PenNumber 未更新: %+v", detail.PenNumber)
	}
	if detail.Alias != "小张" || detail.Email != "alice@farm.com" {
		t.Errorf("未出现在请求里的字段被改动了: %+v", detail)
	}
	if detail.SowNumber == nil || *detail.SowNumber != "S001" {
		t.Errorf("母猪号不该被改动: %+v", detail.SowNumber)
	}
}

func TestUserService_UpdateNotFound(t *testing.T) {
	svc, _ := setupUserSvcTest(t)

	err := svc.Update(context.Background(), &dto.UpdateUserRequest{ID: 999})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Update(999) error = %v, want ErrUserNotFound", err)
	}
}

func TestUserService_RoleReplacement(t *testing.T) {
	svc, db := setupUserSvcTest(t)
	ctx := context.Background()

	r1 := model.Role{Name: "饲养员"}
	r2 := model.Role{Name: "管理员"}
	db.Create(&r1)
	db.Create(&r2)

	svc.Create(ctx, &dto.CreateUserRequest{
		Email:    "alice@farm.com",
		Username: "alice",
		Password: "secret123",
		RoleIDs:  []int64{r1.ID},
	})
	row := findUserByEmail(t, db, "alice@farm.com")

	listRoles := func() []dto.RoleInfo {
		items, _, err := svc.List(ctx, &dto.UserListRequest{Page: 1, PageSize: 10})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("List() = %d 条, want 1", len(items))
		}
		return items[0].Roles
	}

	if roles := listRoles(); len(roles) != 1 || roles[0].Name != "饲养员" {
		t.Fatalf("初始角色 = %v, want 饲养员", roles)
	}

	// 更新请求里的角色集合整体替换既有集合
	svc.Update(ctx, &dto.UpdateUserRequest{ID: row.ID, RoleIDs: []int64{r2.ID}})
	if roles := listRoles(); len(roles) != 1 || roles[0].Name != "管理员" {
		t.Errorf("替换后角色 = %v, want 管理员", roles)
	}
}

func TestUserService_ListDeptEmbed(t *testing.T) {
	svc, db := setupUserSvcTest(t)
	ctx := context.Background()

	deptRepo := repository.NewDeptRepository(db)
	dept := &model.Dept{Name: "产房"}
	if err := deptRepo.CreateWithClosure(ctx, dept); err != nil {
		t.Fatalf("创建部门失败: %v", err)
	}

	svc.Create(ctx, &dto.CreateUserRequest{Email: "a@farm.com", Username: "a", Password: "secret123"})
	svc.Create(ctx, &dto.CreateUserRequest{Email: "b@farm.com", Username: "b", Password: "secret123", DeptID: &dept.ID})

	items, _, err := svc.List(ctx, &dto.UserListRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List() = %d 条, want 2", len(items))
	}

	// 无部门的用户内嵌空对象而不是 null
	if _, ok := items[0].Dept.(struct{}); !ok {
		t.Errorf("无部门时 dept = %#v, want 空对象", items[0].Dept)
	}

	// 有部门的用户内嵌完整部门信息
	info, ok := items[1].Dept.(dto.DeptInfo)
	if !ok || info.Name != "产房" {
		t.Errorf("有部门时 dept = %#v, want 产房", items[1].Dept)
	}
}

func TestUserService_ResetPassword(t *testing.T) {
	svc, db := setupUserSvcTest(t)
	ctx := context.Background()

	if err := svc.ResetPassword(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ResetPassword(999) error = %v, want ErrUserNotFound", err)
	}

	svc.Create(ctx, &dto.CreateUserRequest{Email: "alice@farm.com", Username: "alice", Password: "secret123"})
	row := findUserByEmail(t, db, "alice@farm.com")

	if err := svc.ResetPassword(ctx, row.ID); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	after := findUserByEmail(t, db, "alice@farm.com")
	if err := bcrypt.CompareHashAndPassword([]byte(after.Password), []byte(DefaultPassword)); err != nil {
		t.Errorf("重置后的密码校验失败: %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, db := setupUserSvcTest(t)
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateUserRequest{Email: "alice@farm.com", Username: "alice", Password: "secret123"})
	row := findUserByEmail(t, db, "alice@farm.com")

	if err := svc.Delete(ctx, row.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(ctx, row.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("删除后 Get error = %v, want ErrUserNotFound", err)
	}
	// 再删一次按不存在处理
	if err := svc.Delete(ctx, row.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("重复删除 error = %v, want ErrUserNotFound", err)
	}
}
