package model

import "time"

// ==================== User 系统用户 ====================

// User 系统用户，同时挂载猪场饲喂监控档案字段
type User struct {
	BaseModel
	// 基础信息
	Username    string     `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Alias       string     `gorm:"size:30;index" json:"alias"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone       string     `gorm:"size:20;index" json:"phone"`
	Password    string     `gorm:"size:128" json:"-"` // bcrypt 哈希，永不序列化
	IsActive    bool       `gorm:"default:true;index" json:"is_active"`
	IsSuperuser bool       `gorm:"default:false;index" json:"is_superuser"`
	LastLogin   *time.Time `gorm:"index" json:"last_login"`

	// 部门为弱引用：只做查询，不做外键约束
	DeptID *int64 `gorm:"index" json:"dept_id"`

	Roles []Role `gorm:"many2many:user_roles" json:"roles"`

	// 饲喂档案（无跨字段约束，全部可空）
	FeedingFields `gorm:"embedded"`
}

func (User) TableName() string {
	return "user"
}

// FeedingFields 猪场饲喂监控字段
// 创建/更新/查询三套 schema 通过组合共用这一份字段定义，避免三处漂移
type FeedingFields struct {
	SowNumber         *string    `gorm:"size:50" json:"sow_number"`          // 母猪号
	EarTag            *string    `gorm:"size:50" json:"ear_tag"`             // 电子耳标号
	PigBreed          *string    `gorm:"size:50" json:"pig_breed"`           // 猪种
	BackfatThickness  *float64   `json:"backfat_thickness"`                  // 背膘厚度
	Parity            *int       `json:"parity"`                             // 胎次
	GestationDays     *int       `json:"gestation_days"`                     // 妊娠天数
	PenNumber         *string    `gorm:"size:50" json:"pen_number"`          // 栏号
	FeedIntake        *float64   `json:"feed_intake"`                        // 采食量
	FeederNumber      *string    `gorm:"size:50" json:"feeder_number"`       // 下料器号
	PredictedFeed     *float64   `json:"predicted_feed"`                     // 预测采食量
	SetFeed           *float64   `json:"set_feed"`                           // 设置采食量
	ActualFeed        *float64   `json:"actual_feed"`                        // 实际采食量
	StartTime         *time.Time `json:"start_time"`                         // 开始时间
	EndTime           *time.Time `json:"end_time"`                           // 结束时间
	SetFeedAmount     *float64   `json:"set_feed_amount"`                    // 设置饲料量
	CurrentFeedAmount *float64   `json:"current_feed_amount"`                // 当前饲料量
	LastFeedTime      *time.Time `json:"last_feed_time"`                     // 上次下料时间
	ControlSwitch     *bool      `json:"control_switch"`                     // 控制开关
	FeederStatus      *string    `gorm:"size:20" json:"feeder_status"`       // 下料器状态
	Date              *time.Time `gorm:"type:date" json:"date"`              // 日期
	FeedingStatus     *string    `gorm:"size:20" json:"feeding_status"`      // 采食状态
	FeedingDate       *time.Time `gorm:"type:date" json:"feeding_date"`      // 采食日期
	IsNormal          *bool      `json:"is_normal"`                          // 正常
	LastSetTime       *time.Time `json:"last_set_time"`                      // 上次设置时间
	Status            *string    `gorm:"size:20" json:"status"`              // 状态
}
