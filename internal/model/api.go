package model

// MethodType HTTP 请求方法
type MethodType string

const (
	MethodGet    MethodType = "GET"
	MethodPost   MethodType = "POST"
	MethodPut    MethodType = "PUT"
	MethodDelete MethodType = "DELETE"
	MethodPatch  MethodType = "PATCH"
)

// Api 接口资源，权限校验用的参照数据
type Api struct {
	BaseModel
	Path    string     `gorm:"size:100;index" json:"path"`
	Method  MethodType `gorm:"size:10;index" json:"method"`
	Summary string     `gorm:"size:500;index" json:"summary"`
	Tags    string     `gorm:"size:100;index" json:"tags"`
}

func (Api) TableName() string {
	return "api"
}
