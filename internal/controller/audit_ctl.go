package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/service"
)

// ==================== AuditLogController 审计日志控制器 ====================

// AuditLogController 审计日志控制器
type AuditLogController struct {
	auditService *service.AuditLogService
}

// NewAuditLogController 创建审计日志控制器
func NewAuditLogController(auditService *service.AuditLogService) *AuditLogController {
	return &AuditLogController{auditService: auditService}
}

// List 审计日志列表
// @Summary 查看操作日志
// @Tags AuditLog
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param username query string false "操作人名称"
// @Param module query string false "功能模块"
// @Param method query string false "请求方法"
// @Param summary query string false "接口描述"
// @Param path query string false "请求路径"
// @Param status query int false "状态码"
// @Param start_time query string false "开始时间"
// @Param end_time query string false "结束时间"
// @Success 200 {object} dto.PageResponse
// @Router /api/v1/auditlog/list [get]
func (c *AuditLogController) List(ctx *gin.Context) {
	var req dto.AuditLogListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	logs, total, err := c.auditService.List(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessExtra(logs, total, req.Page, req.PageSize))
}
