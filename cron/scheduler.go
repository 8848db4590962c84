package cron

import (
	"context"
	"time"

	"readycleans/services/tasks"

	"github.com/hibiken/asynq"
	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// StartBlogCron enqueues a generation task on every tick of schedule. Stop the
// returned scheduler on shutdown.
func StartBlogCron(schedule string, enq TaskEnqueuer, logger *zap.Logger) (*robfig.Cron, error) {
	c := robfig.New()
	_, err := c.AddFunc(schedule, func() {
		enqueueBlogTask(context.Background(), enq, "cron", logger)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("blog cron started", zap.String("schedule", schedule))
	return c, nil
}

func enqueueBlogTask(ctx context.Context, enq TaskEnqueuer, source string, logger *zap.Logger) {
	task, opts, err := tasks.NewBlogGenerateTask(tasks.BlogPayload{
		Source:      source,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Error("build blog task", zap.Error(err))
		return
	}
	info, err := enq.EnqueueContext(ctx, task, opts...)
	if err != nil {
		logger.Error("enqueue blog task", zap.Error(err))
		return
	}
	logger.Info("blog task enqueued", zap.String("taskID", info.ID))
}
