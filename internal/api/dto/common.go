package dto

// ==================== 统一响应结构 ====================

// Response 通用响应
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// PageResponse 分页响应，在通用响应外多带分页信息
type PageResponse struct {
	Code     int    `json:"code"`
	Msg      string `json:"msg"`
	Data     any    `json:"data"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// Success 成功响应（带数据）
func Success(data any) Response {
	return Response{Code: 200, Msg: "OK", Data: data}
}

// SuccessMsg 成功响应（只带提示）
func SuccessMsg(msg string) Response {
	return Response{Code: 200, Msg: msg}
}

// Fail 失败响应
func Fail(code int, msg string) Response {
	return Response{Code: code, Msg: msg}
}

// SuccessExtra 分页成功响应
func SuccessExtra(data any, total int64, page, pageSize int) PageResponse {
	return PageResponse{Code: 200, Msg: "OK", Data: data, Total: total, Page: page, PageSize: pageSize}
}
