package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/service"
)

// ==================== MenuController 菜单控制器 ====================

// MenuController 菜单控制器
type MenuController struct {
	menuService *service.MenuService
}

// NewMenuController 创建菜单控制器
func NewMenuController(menuService *service.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

// List 菜单树
// @Summary 查看菜单列表
// @Tags Menu
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/v1/menu/list [get]
func (c *MenuController) List(ctx *gin.Context) {
	tree, err := c.menuService.ListTree(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(tree))
}

// Get 菜单详情
// @Summary 查看菜单
// @Tags Menu
// @Produce json
// @Param menu_id query int true "菜单ID"
// @Success 200 {object} dto.Response
// @Router /api/v1/menu/get [get]
func (c *MenuController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("menu_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	menu, err := c.menuService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(menu))
}

// Create 创建菜单
// @Summary 创建菜单
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuRequest true "菜单信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/menu/create [post]
func (c *MenuController) Create(ctx *gin.Context) {
	var req dto.CreateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.menuService.Create(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("创建成功"))
}

// Update 更新菜单
// @Summary 更新菜单
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.UpdateMenuRequest true "菜单信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/menu/update [post]
func (c *MenuController) Update(ctx *gin.Context) {
	var req dto.UpdateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.menuService.Update(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("更新成功"))
}

// Delete 删除菜单
// @Summary 删除菜单
// @Tags Menu
// @Produce json
// @Param menu_id query int true "菜单ID"
// @Success 200 {object} dto.Response
// @Router /api/v1/menu/delete [delete]
func (c *MenuController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("menu_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.menuService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("删除成功"))
}
