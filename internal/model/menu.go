package model

import "gorm.io/datatypes"

// MenuType 菜单类型
type MenuType string

const (
	MenuTypeCatalog MenuType = "catalog" // 目录
	MenuTypeMenu    MenuType = "menu"    // 菜单
)

// Menu 前端菜单
type Menu struct {
	BaseModel
	Name      string         `gorm:"size:20;index" json:"name"`
	Remark    datatypes.JSON `json:"remark"` // 保留字段
	MenuType  MenuType       `gorm:"size:10" json:"menu_type"`
	Icon      string         `gorm:"size:100" json:"icon"`
	Path      string         `gorm:"size:100;index" json:"path"`
	Order     int            `gorm:"default:0;index" json:"order"`
	ParentID  int64          `gorm:"default:0;index" json:"parent_id"` // 自引用，不做约束
	IsHidden  bool           `gorm:"default:false" json:"is_hidden"`
	Component string         `gorm:"size:100" json:"component"`
	Keepalive bool           `gorm:"default:true" json:"keepalive"`
	Redirect  string         `gorm:"size:100" json:"redirect"`
}

func (Menu) TableName() string {
	return "menu"
}
