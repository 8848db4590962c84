package cron

import (
	"context"

	"readycleans/config"
	"readycleans/models"
	"readycleans/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BlogGenerator is the part of the blog service the worker drives.
type BlogGenerator interface {
	Generate(ctx context.Context) (models.BlogPost, error)
}

// QueueRedisOpt points asynq at the queue database.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// workerStarter is satisfied by *asynq.Server.
type workerStarter interface {
	Start(handler asynq.Handler) error
}

// InitBlogWorker starts the asynq worker and returns the server so the
// caller can shut it down. A failed start is logged once; scheduled
// generation stays off until the next process start.
func InitBlogWorker(gen BlogGenerator, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBlogGenerate, handleBlogTask(gen, logger))

	startWorker(srv, mux, logger)
	return srv
}

func startWorker(srv workerStarter, mux asynq.Handler, logger *zap.Logger) error {
	logger.Info("starting blog worker")
	if err := srv.Start(mux); err != nil {
		logger.Error("blog worker failed to start; scheduled generation disabled", zap.Error(err))
		return err
	}
	return nil
}

func handleBlogTask(gen BlogGenerator, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBlogPayload(task)
		if err != nil {
			logger.Error("invalid blog task payload", zap.Error(err))
			return err
		}

		post, err := gen.Generate(ctx)
		if err != nil {
			logger.Error("blog generation failed", zap.String("source", p.Source), zap.Error(err))
			return err
		}
		logger.Info("blog task done", zap.String("source", p.Source), zap.String("id", post.ID))
		return nil
	}
}
