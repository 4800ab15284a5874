package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"pigfarm_admin_v1/internal/model"
	"pigfarm_admin_v1/internal/service"
)

// ==================== 审计日志中间件 ====================

// RouteMeta 路由的审计描述，key 为 "METHOD /path"
type RouteMeta struct {
	Module  string
	Summary string
}

// auditRoutes 需要落审计日志的路由及其描述
var auditRoutes = map[string]RouteMeta{
	"GET /api/v1/user/list":            {Module: "用户管理", Summary: "查看用户列表"},
	"GET /api/v1/user/get":             {Module: "用户管理", Summary: "查看用户"},
	"POST /api/v1/user/create":         {Module: "用户管理", Summary: "创建用户"},
	"POST /api/v1/user/update":         {Module: "用户管理", Summary: "更新用户"},
	"DELETE /api/v1/user/delete":       {Module: "用户管理", Summary: "删除用户"},
	"POST /api/v1/user/reset_password": {Module: "用户管理", Summary: "重置密码"},

	"GET /api/v1/dept/list":      {Module: "部门管理", Summary: "查看部门列表"},
	"GET /api/v1/dept/get":       {Module: "部门管理", Summary: "查看部门"},
	"POST /api/v1/dept/create":   {Module: "部门管理", Summary: "创建部门"},
	"POST /api/v1/dept/update":   {Module: "部门管理", Summary: "更新部门"},
	"DELETE /api/v1/dept/delete": {Module: "部门管理", Summary: "删除部门"},

	"GET /api/v1/role/list":        {Module: "角色管理", Summary: "查看角色列表"},
	"GET /api/v1/role/get":         {Module: "角色管理", Summary: "查看角色"},
	"POST /api/v1/role/create":     {Module: "角色管理", Summary: "创建角色"},
	"POST /api/v1/role/update":     {Module: "角色管理", Summary: "更新角色"},
	"DELETE /api/v1/role/delete":   {Module: "角色管理", Summary: "删除角色"},
	"POST /api/v1/role/authorized": {Module: "角色管理", Summary: "更新角色权限"},

	"GET /api/v1/api/list":       {Module: "API管理", Summary: "查看API列表"},
	"POST /api/v1/api/create":    {Module: "API管理", Summary: "创建API"},
	"POST /api/v1/api/update":    {Module: "API管理", Summary: "更新API"},
	"DELETE /api/v1/api/delete":  {Module: "API管理", Summary: "删除API"},
	"POST /api/v1/api/refresh":   {Module: "API管理", Summary: "刷新API列表"},

	"GET /api/v1/menu/list":      {Module: "菜单管理", Summary: "查看菜单列表"},
	"GET /api/v1/menu/get":       {Module: "菜单管理", Summary: "查看菜单"},
	"POST /api/v1/menu/create":   {Module: "菜单管理", Summary: "创建菜单"},
	"POST /api/v1/menu/update":   {Module: "菜单管理", Summary: "更新菜单"},
	"DELETE /api/v1/menu/delete": {Module: "菜单管理", Summary: "删除菜单"},
}

// RouteMetaFor 查询某条路由的审计描述，API 刷新时复用
func RouteMetaFor(method, path string) (RouteMeta, bool) {
	meta, ok := auditRoutes[method+" "+path]
	return meta, ok
}

// bodyWriter 响应体捕获
type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// AuditLog 审计日志中间件
// 对登记过的路由，每次请求落一条只写不改的审计记录；
// 写库失败只打日志，不影响正常响应
func AuditLog(auditSvc *service.AuditLogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		meta, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			c.Next()
			return
		}

		requestArgs := captureRequestArgs(c)

		writer := bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		entry := &model.AuditLog{
			UserID:       GetUserID(c),
			Username:     GetUsername(c),
			Module:       meta.Module,
			Summary:      meta.Summary,
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			Status:       c.Writer.Status(),
			ResponseTime: int(elapsed.Milliseconds()),
			RequestArgs:  requestArgs,
			ResponseBody: datatypes.JSON(writer.body.Bytes()),
		}

		if err := auditSvc.Record(c.Request.Context(), entry); err != nil {
			logger.Error("审计日志写入失败",
				zap.String("path", entry.Path),
				zap.Error(err),
			)
		}
	}
}

// captureRequestArgs 捕获请求参数
// GET/DELETE 取 query，其余取 JSON body；password 字段统一脱敏
func captureRequestArgs(c *gin.Context) datatypes.JSON {
	if c.Request.Method == "GET" || c.Request.Method == "DELETE" {
		args := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			args[key] = strings.Join(values, ",")
		}
		data, _ := json.Marshal(args)
		return data
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil
	}
	// 读完后回填，后续的 ShouldBindJSON 还要用
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil
	}
	if _, ok := args["password"]; ok {
		args["password"] = "******"
	}
	data, _ := json.Marshal(args)
	return data
}
