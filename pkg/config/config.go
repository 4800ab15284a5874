package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ==================== 配置结构 ====================

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin 运行模式: debug / release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN             string `mapstructure:"dsn"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	LogSQL          bool   `mapstructure:"log_sql"` // 是否打印 SQL，开发环境用
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 单位分钟
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"` // debug / info / warn / error
}

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	TokenTTL  int    `mapstructure:"token_ttl"` // 单位小时
	Issuer    string `mapstructure:"issuer"`
}

// AuditConfig 审计日志配置
type AuditConfig struct {
	RetentionDays int    `mapstructure:"retention_days"`
	CleanupCron   string `mapstructure:"cleanup_cron"`
}

// ==================== 加载 ====================

// Load 加载配置
// 优先级：环境变量 > 配置文件 > 默认值；
// 配置文件不存在时直接用默认值跑起来，方便本地开发
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// 文件不存在时走默认值；存在但解析失败要报出来，不能静默吞掉
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	v.SetEnvPrefix("PIGFARM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=pigfarm_admin port=5432 sslmode=disable TimeZone=Asia/Shanghai")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.log_sql", true)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("log.level", "info")

	v.SetDefault("jwt.secret_key", "pigfarm-admin-secret-key-change-in-production")
	v.SetDefault("jwt.token_ttl", 2)
	v.SetDefault("jwt.issuer", "pigfarm-admin")

	v.SetDefault("audit.retention_days", 90)
	v.SetDefault("audit.cleanup_cron", "0 0 3 * * *") // 每天凌晨三点
}
