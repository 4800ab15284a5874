package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pigfarm_admin_v1/internal/api/dto"
	"pigfarm_admin_v1/internal/service"
)

// ==================== 错误映射 ====================

// notFoundErrs 映射为 404 的业务错误
var notFoundErrs = []error{
	service.ErrUserNotFound,
	service.ErrDeptNotFound,
	service.ErrRoleNotFound,
	service.ErrApiNotFound,
	service.ErrMenuNotFound,
}

// conflictErrs 映射为 400 的业务错误（冲突/非法操作）
var conflictErrs = []error{
	service.ErrEmailExists,
	service.ErrDeptNameExists,
	service.ErrRoleNameExists,
	service.ErrMenuHasChildren,
	service.ErrDeptMoveToDescendant,
	service.ErrInvalidTimeRange,
}

// respondError 把业务错误翻译成统一失败响应
func respondError(ctx *gin.Context, err error) {
	for _, known := range notFoundErrs {
		if errors.Is(err, known) {
			ctx.JSON(http.StatusNotFound, dto.Fail(404, err.Error()))
			return
		}
	}
	for _, known := range conflictErrs {
		if errors.Is(err, known) {
			ctx.JSON(http.StatusBadRequest, dto.Fail(400, err.Error()))
			return
		}
	}
	ctx.JSON(http.StatusInternalServerError, dto.Fail(500, err.Error()))
}

// respondBindError 参数绑定失败的统一响应
func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, dto.Fail(422, "参数错误: "+err.Error()))
}
