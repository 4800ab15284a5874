package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 初始化 zap 日志
// level 非法时回落到 info
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	return log, nil
}
