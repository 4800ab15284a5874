package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pigfarm_admin_v1/internal/controller"
	"pigfarm_admin_v1/internal/middleware"
	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/repository"
	"pigfarm_admin_v1/internal/router"
	"pigfarm_admin_v1/internal/service"
	"pigfarm_admin_v1/internal/task"
	"pigfarm_admin_v1/pkg/config"
	"pigfarm_admin_v1/pkg/database"
	"pigfarm_admin_v1/pkg/logger"
)

// @title 养殖场后台管理系统 API
// @version 1.0
// @description 用户、部门、角色、菜单、API 资源与操作日志管理
// @BasePath /
func main() {
	// 1. 加载配置
	cfg, err := config.Load(getEnv("CONFIG_FILE", "config.yaml"))
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	// 2. 初始化日志
	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer zapLogger.Sync()

	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey: cfg.JWT.SecretKey,
		TokenTTL:  time.Duration(cfg.JWT.TokenTTL) * time.Hour,
		Issuer:    cfg.JWT.Issuer,
	})

	// 3. 初始化数据库
	db := initDatabase(cfg, zapLogger)

	// 4. 初始化依赖
	deps := initDependencies(db)

	// 5. 启动定时任务
	cleanupTask := initTasks(cfg, deps, zapLogger)
	defer cleanupTask.Stop()

	// 6. 初始化路由
	r := router.SetupRouter(deps.Controllers, deps.Services.AuditLog, zapLogger)

	// 7. 启动服务
	startServer(r, cfg, zapLogger)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Dept     repository.DeptRepository
	Role     repository.RoleRepository
	Api      repository.ApiRepository
	Menu     repository.MenuRepository
	AuditLog repository.AuditLogRepository
}

// Services 服务集合
type Services struct {
	User     *service.UserService
	Dept     *service.DeptService
	Role     *service.RoleService
	Api      *service.ApiService
	Menu     *service.MenuService
	AuditLog *service.AuditLogService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config, zapLogger *zap.Logger) *gorm.DB {
	db, err := database.InitDB(cfg.Database,
		// 组织架构
		&model.User{}, &model.Dept{}, &model.DeptClosure{},
		// 权限
		&model.Role{}, &model.Api{}, &model.Menu{},
		// 审计
		&model.AuditLog{},
	)
	if err != nil {
		zapLogger.Fatal("数据库初始化失败", zap.Error(err))
	}
	zapLogger.Info("数据库连接成功")
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Dept:     repository.NewDeptRepository(db),
		Role:     repository.NewRoleRepository(db),
		Api:      repository.NewApiRepository(db),
		Menu:     repository.NewMenuRepository(db),
		AuditLog: repository.NewAuditLogRepository(db),
	}

	// -------- 业务服务 --------
	services := &Services{
		User:     service.NewUserService(repos.User, repos.Dept),
		Dept:     service.NewDeptService(repos.Dept),
		Role:     service.NewRoleService(repos.Role),
		Api:      service.NewApiService(repos.Api),
		Menu:     service.NewMenuService(repos.Menu),
		AuditLog: service.NewAuditLogService(repos.AuditLog),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		User:     controller.NewUserController(services.User),
		Dept:     controller.NewDeptController(services.Dept),
		Role:     controller.NewRoleController(services.Role),
		Api:      controller.NewApiController(services.Api),
		Menu:     controller.NewMenuController(services.Menu),
		AuditLog: controller.NewAuditLogController(services.AuditLog),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(cfg *config.Config, deps *Dependencies, zapLogger *zap.Logger) *task.AuditCleanupTask {
	cleanupTask := task.NewAuditCleanupTask(
		deps.Services.AuditLog,
		cfg.Audit.CleanupCron,
		cfg.Audit.RetentionDays,
		zapLogger,
	)
	cleanupTask.Start()
	return cleanupTask
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, cfg *config.Config, zapLogger *zap.Logger) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	// 异步启动服务
	go func() {
		zapLogger.Info("服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("服务强制关闭", zap.Error(err))
	}

	zapLogger.Info("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
