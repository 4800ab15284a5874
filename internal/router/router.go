package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"pigfarm_admin_v1/internal/controller"
	"pigfarm_admin_v1/internal/middleware"
	"pigfarm_admin_v1/internal/service"
)

// Controllers 控制器集合
type Controllers struct {
	User     *controller.UserController
	Dept     *controller.DeptController
	Role     *controller.RoleController
	Api      *controller.ApiController
	Menu     *controller.MenuController
	AuditLog *controller.AuditLogController
}

// SetupRouter 注册所有路由
func SetupRouter(ctrls *Controllers, auditSvc *service.AuditLogService, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.OptionalAuth(),
		middleware.AuditLog(auditSvc, logger),
	)

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		// user 用户管理
		user := api.Group("/user")
		{
			user.GET("/list", ctrls.User.List)
			user.GET("/get", ctrls.User.Get)
			user.POST("/create", ctrls.User.Create)
			user.POST("/update", ctrls.User.Update)
			user.DELETE("/delete", ctrls.User.Delete)
			user.POST("/reset_password", ctrls.User.ResetPassword)
		}
		// dept 部门管理
		dept := api.Group("/dept")
		{
			dept.GET("/list", ctrls.Dept.List)
			dept.GET("/get", ctrls.Dept.Get)
			dept.POST("/create", ctrls.Dept.Create)
			dept.POST("/update", ctrls.Dept.Update)
			dept.DELETE("/delete", ctrls.Dept.Delete)
		}
		// role 角色管理
		role := api.Group("/role")
		{
			role.GET("/list", ctrls.Role.List)
			role.GET("/get", ctrls.Role.Get)
			role.POST("/create", ctrls.Role.Create)
			role.POST("/update", ctrls.Role.Update)
			role.DELETE("/delete", ctrls.Role.Delete)
			role.POST("/authorized", ctrls.Role.UpdateAuthorized)
		}
		// api 接口资源管理
		apis := api.Group("/api")
		{
			apis.GET("/list", ctrls.Api.List)
			apis.POST("/create", ctrls.Api.Create)
			apis.POST("/update", ctrls.Api.Update)
			apis.DELETE("/delete", ctrls.Api.Delete)
			apis.POST("/refresh", ctrls.Api.Refresh)
		}
		// menu 菜单管理
		menu := api.Group("/menu")
		{
			menu.GET("/list", ctrls.Menu.List)
			menu.GET("/get", ctrls.Menu.Get)
			menu.POST("/create", ctrls.Menu.Create)
			menu.POST("/update", ctrls.Menu.Update)
			menu.DELETE("/delete", ctrls.Menu.Delete)
		}
		// auditlog 操作日志
		auditlog := api.Group("/auditlog")
		{
			auditlog.GET("/list", ctrls.AuditLog.List)
		}
	}

	// API 刷新功能要拿到实际注册的路由做对账
	ctrls.Api.RoutesFunc = func() []service.RouteItem {
		var items []service.RouteItem
		for _, route := range r.Routes() {
			meta, ok := middleware.RouteMetaFor(route.Method, route.Path)
			if !ok {
				continue
			}
			items = append(items, service.RouteItem{
				Method:  route.Method,
				Path:    route.Path,
				Summary: meta.Summary,
				Tags:    meta.Module,
			})
		}
		return items
	}

	return r
}
