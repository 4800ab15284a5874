package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/service"
)

// ==================== ApiController 接口资源控制器 ====================

// ApiController 接口资源控制器
type ApiController struct {
	apiService *service.ApiService

	// RoutesFunc 由路由层注入，Refresh 时取实际注册的路由
	RoutesFunc func() []service.RouteItem
}

// NewApiController 创建接口资源控制器
func NewApiController(apiService *service.ApiService) *ApiController {
	return &ApiController{apiService: apiService}
}

// List API 列表
// @Summary 查看API列表
// @Tags Api
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param path query string false "API路径"
// @Param summary query string false "API简介"
// @Param tags query string false "API标签"
// @Success 200 {object} dto.PageResponse
// @Router /api/v1/api/list [get]
func (c *ApiController) List(ctx *gin.Context) {
	var req dto.ApiListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	apis, total, err := c.apiService.List(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessExtra(apis, total, req.Page, req.PageSize))
}

// Create 创建 API
// @Summary 创建API
// @Tags Api
// @Accept json
// @Produce json
// @Param request body dto.CreateApiRequest true "API信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/api/create [post]
func (c *ApiController) Create(ctx *gin.Context) {
	var req dto.CreateApiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.apiService.Create(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("创建成功"))
}

// Update 更新 API
// @Summary 更新API
// @Tags Api
// @Accept json
// @Produce json
// @Param request body dto.UpdateApiRequest true "API信息"
// @Success 200 {object} dto.Response
// @Router /api/v1/api/update [post]
func (c *ApiController) Update(ctx *gin.Context) {
	var req dto.UpdateApiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.apiService.Update(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("更新成功"))
}

// Delete 删除 API
// @Summary 删除API
// @Tags Api
// @Produce json
// @Param api_id query int true "ApiID"
// @Success 200 {object} dto.Response
// @Router /api/v1/api/delete [delete]
func (c *ApiController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("api_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.apiService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("删除成功"))
}

// Refresh 刷新 API 表
// @Summary 刷新API列表
// @Tags Api
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/v1/api/refresh [post]
func (c *ApiController) Refresh(ctx *gin.Context) {
	var routes []service.RouteItem
	if c.RoutesFunc != nil {
		routes = c.RoutesFunc()
	}

	if err := c.apiService.Refresh(ctx.Request.Context(), routes); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMsg("刷新成功"))
}
