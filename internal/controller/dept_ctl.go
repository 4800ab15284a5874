package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/service"
)

// ==================== DeptController 部门控制器 ====================

// DeptController 部门控制器
type DeptController struct {
	deptService *service.DeptService
}

// NewDeptController 创建部门控制器
func NewDeptController(deptService *service.DeptService) *DeptController {
	return &DeptController{deptService: deptService}
}

// List 部门树
// @Summary 查看部门列表
// @Tags Dept
// @Produce json
// @Param name query string false "部门名称，用于搜索"
// @Success 200 {object} dto.Response
// @Router /api/v1/dept/list [get]
func (c *DeptController) List(ctx *gin.Context) {
	var req dto.DeptListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	tree, err := c.deptService.ListTree(ctx.Request.Context(), req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(tree))
}

// Get 部门详情
// @Summary 查看部门
// @Tags Dept
// @Produce json
// @Param id query int true "部门ID"
// @Success 200 {object} dto.Response
// @Router /api/v1/dept/get [get]
func (c *DeptController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	dept, err := c.deptService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(dept))
}

// Create 创建部门
// @Summary 创建部门
// @Tags Dept
// @Accept json
// @Produce json
// @Param request body dto.CreateDeptRequest true "部门信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/dept/create [post]
func (c *DeptController) Create(ctx *gin.Context) {
	var req dto.CreateDeptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.deptService.Create(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("创建成功"))
}

// Update 更新部门
// @Summary 更新部门
// @Tags Dept
// @Accept json
// @Produce json
// @Param request body dto.UpdateDeptRequest true "部门信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/dept/update [post]
func (c *DeptController) Update(ctx *gin.Context) {
	var req dto.UpdateDeptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.deptService.Update(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("更新成功"))
}

// Delete 删除部门
// @Summary 删除部门
// @Tags Dept
// @Produce json
// @Param dept_id query int true "部门ID"
// @Success 200 {object} dto.Response
// @Router /api/v1/dept/delete [delete]
func (c *DeptController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("dept_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.deptService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("删除成功"))
}
