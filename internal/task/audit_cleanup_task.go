package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"pigfarm_admin_v1/internal/service"
)

// AuditCleanupTask 审计日志清理任务
// 按保留天数定期删除过期日志，避免表无限膨胀
type AuditCleanupTask struct {
	AuditService *service.AuditLogService
	Cron         *cron.Cron

	spec          string // cron 表达式
	retentionDays int    // 日志保留天数
	logger        *zap.Logger
}

func NewAuditCleanupTask(auditService *service.AuditLogService, spec string, retentionDays int, logger *zap.Logger) *AuditCleanupTask {
	return &AuditCleanupTask{
		AuditService:  auditService,
		Cron:          cron.New(cron.WithSeconds()), // 支持秒级控制
		spec:          spec,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Start 启动定时任务
func (t *AuditCleanupTask) Start() {
	_, err := t.Cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		t.cleanupJob(ctx)
	})
	if err != nil {
		t.logger.Fatal("无法启动审计日志清理任务", zap.Error(err))
	}

	t.Cron.Start()
	t.logger.Info("审计日志清理任务已启动",
		zap.String("spec", t.spec),
		zap.Int("retention_days", t.retentionDays),
	)
}

// Stop 停止定时任务，等待在跑的 job 结束
func (t *AuditCleanupTask) Stop() {
	<-t.Cron.Stop().Done()
}

func (t *AuditCleanupTask) cleanupJob(ctx context.Context) {
	deleted, err := t.AuditService.CleanupBefore(ctx, t.retentionDays)
	if err != nil {
		// 日志仅记录，下个周期会重试
		t.logger.Error("审计日志清理失败", zap.Error(err))
		return
	}
	t.logger.Info("审计日志清理完成", zap.Int64("deleted", deleted))
}
