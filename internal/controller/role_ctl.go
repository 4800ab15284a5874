package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/service"
)

// ==================== RoleController 角色控制器 ====================

// RoleController 角色控制器
type RoleController struct {
	roleService *service.RoleService
}

// NewRoleController 创建角色控制器
func NewRoleController(roleService *service.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// List 角色列表
// @Summary 查看角色列表
// @Tags Role
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param role_name query string false "角色名称，用于搜索"
// @Success 200 {object} dto.PageResponse
// @Router /api/v1/role/list [get]
func (c *RoleController) List(ctx *gin.Context) {
	var req dto.RoleListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	roles, total, err := c.roleService.List(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessExtra(roles, total, req.Page, req.PageSize))
}

// Get 角色详情
// @Summary 查看角色
// @Tags Role
// @Produce json
// @Param role_id query int true "角色ID"
// @Success 200 {object} dto.Response
// @Router /api/v1/role/get [get]
func (c *RoleController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("role_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	role, err := c.roleService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(role))
}

// Create 创建角色
// @Summary 创建角色
// @Tags Role
// @Accept json
// @Produce json
// @Param request body dto.CreateRoleRequest true "角色信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/role/create [post]
func (c *RoleController) Create(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.roleService.Create(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("创建成功"))
}

// Update 更新角色
// @Summary 更新角色
// @Tags Role
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoleRequest true "角色信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/role/update [post]
func (c *RoleController) Update(ctx *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.roleService.Update(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("更新成功"))
}

// Delete 删除角色
// @Summary 删除角色
// @Tags Role
// @Produce json
// @Param role_id query int true "角色ID"
// @Success 200 {object} dto.Response
// @Router /api/v1/role/delete [delete]
func (c *RoleController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("role_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.roleService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("删除成功"))
}

// UpdateAuthorized 更新角色授权
// @Summary 更新角色权限
// @Tags Role
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoleAuthorizedRequest true "授权信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/role/authorized [post]
func (c *RoleController) UpdateAuthorized(ctx *gin.Context) {
	var req dto.UpdateRoleAuthorizedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.roleService.UpdateAuthorized(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("授权成功"))
}
