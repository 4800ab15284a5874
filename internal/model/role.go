package model

// Role 角色
type Role struct {
	BaseModel
	Name string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Desc string `gorm:"size:500" json:"desc"`

	Menus []Menu `gorm:"many2many:role_menus" json:"menus,omitempty"`
	Apis  []Api  `gorm:"many2many:role_apis" json:"apis,omitempty"`
}

func (Role) TableName() string {
	return "role"
}
