package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/service"
)

// ==================== UserController 用户控制器 ====================

// UserController 用户控制器
type UserController struct {
	userService *service.UserService
}

// NewUserController 创建用户控制器
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// List 用户列表
// @Summary 查看用户列表
// @Tags User
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param username query string false "用户名称，用于搜索"
// @Param email query string false "邮箱地址"
// @Param dept_id query int false "部门ID"
// @Param sow_number query string false "母猪号"
// @Param ear_tag query string false "电子耳标号"
// @Param pen_number query string false "栏号"
// @Param feeder_number query string false "下料器号"
// @Param pig_breed query string false "猪种"
// @Param feeding_status query string false "采食状态"
// @Param feeder_status query string false "下料器状态"
// @Success 200 {object} dto.PageResponse
// @Router /api/v1/user/list [get]
func (c *UserController) List(ctx *gin.Context) {
	var req dto.UserListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	items, total, err := c.userService.List(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessExtra(items, total, req.Page, req.PageSize))
}

// Get 查看用户
// @Summary 查看用户
// @Tags User
// @Produce json
// @Param user_id query int true "用户ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/user/get [get]
func (c *UserController) Get(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Query("user_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	user, err := c.userService.Get(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(user))
}

// Create 创建用户
// @Summary 创建用户
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "用户信息"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Router /api/v1/user/create [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.userService.Create(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessMsg("创建成功"))
}

// Update 更新用户
// @Summary 更新用户
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "用户信息"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/user/update [post]
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.userService.Update(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessMsg("更新成功"))
}

// Delete 删除用户
// @Summary 删除用户
// @Tags User
// @Produce json
// @Param user_id query int true "用户ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/user/delete [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Query("user_id"), 10, 64)
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessMsg("删除成功"))
}

// ResetPassword 重置密码
// @Summary 重置密码
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "用户ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/user/reset_password [post]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.userService.ResetPassword(ctx.Request.Context(), req.UserID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessMsg("密码已重置为"+service.DefaultPassword))
}
