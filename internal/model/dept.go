package model

// Dept 部门
type Dept struct {
	BaseModel
	Name      string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Desc      string `gorm:"size:500" json:"desc"`
	IsDeleted bool   `gorm:"default:false;index" json:"is_deleted"` // 软删除标记
	Order     int    `gorm:"default:0;index" json:"order"`
	ParentID  int64  `gorm:"default:0;index" json:"parent_id"` // 自引用，不做约束
}

func (Dept) TableName() string {
	return "dept"
}

// DeptClosure 部门层级闭包表
// 预计算所有祖先-后代关系，层级查询不需要递归
// 不变量：每个部门都有一条 level=0 的自指行；
// 任意经 parent_id 可达的祖先-后代对都有对应行，level 等于路径长度
type DeptClosure struct {
	BaseModel
	Ancestor   int64 `gorm:"index" json:"ancestor"`   // 父代
	Descendant int64 `gorm:"index" json:"descendant"` // 子代
	Level      int   `gorm:"default:0;index" json:"level"`
}

func (DeptClosure) TableName() string {
	return "dept_closure"
}
