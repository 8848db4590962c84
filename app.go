package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"readycleans/config"
	"readycleans/cron"
	"readycleans/handlers"
	"readycleans/routes"
	"readycleans/services/booking"
	"readycleans/services/feed"
	ai "readycleans/services/intelligence"
	"readycleans/services/notification"
	"readycleans/services/payment"
	"readycleans/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// newGemini returns nil when no API key is configured.
func newGemini(ctx context.Context, logger *zap.Logger) *ai.GeminiClient {
	if config.AppConfig.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; chat and blog generation disabled")
		return nil
	}
	client, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Error("gemini client unavailable", zap.Error(err))
		return nil
	}
	return client
}

func newBlogService(gemini *ai.GeminiClient, redisClient *redis.Client, logger *zap.Logger) *feed.Service {
	var cache feed.PostCache
	if redisClient != nil {
		cache = feed.NewRedisPostCache(redisClient, config.AppConfig.BlogCacheTTL)
	}
	var creator *feed.Creator
	if gemini != nil {
		creator = feed.NewCreator(gemini)
	}
	return feed.NewService(feed.NewFileStore(config.AppConfig.BlogFile), cache, creator, logger)
}

func runBlogGenerate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := utils.GetLogger()
	defer logger.Sync()

	gemini := newGemini(ctx, logger)
	if gemini == nil {
		return fmt.Errorf("%w: set GEMINI_API_KEY", feed.ErrGenerationDisabled)
	}
	defer gemini.Close()

	post, err := newBlogService(gemini, utils.GetCacheClient(), logger).Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate blog post: %w", err)
	}
	fmt.Printf("Generated %q (%s)\n", post.Title, post.ID)
	return nil
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := utils.GetLogger()
	defer logger.Sync()

	stripe.Key = config.AppConfig.StripeKey

	if err := os.MkdirAll(filepath.Dir(config.AppConfig.BlogFile), 0o755); err != nil {
		logger.Warn("blog directory unavailable", zap.Error(err))
	}
	redisClient := utils.GetCacheClient()
	healthCtx, stopHealth := context.WithCancel(ctx)
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, redisClient, config.AppConfig.BlogFile, time.Minute)

	gemini := newGemini(ctx, logger)
	if gemini != nil {
		defer gemini.Close()
	}

	var chatModel ai.ChatModel
	if gemini != nil {
		chatModel = gemini
	}
	var notifier ai.ChatNotifier
	if slack := notification.NewSlackNotifier(config.AppConfig.SlackWebhookURL); slack != nil {
		notifier = slack
	}
	chatSvc := ai.NewDefaultChatService(chatModel, notifier, logger)
	blogSvc := newBlogService(gemini, redisClient, logger)

	var (
		worker   *asynq.Server
		queue    *asynq.Client
		stopCron func()
	)
	if gemini != nil {
		worker = cron.InitBlogWorker(blogSvc, logger)
		queue = asynq.NewClient(cron.QueueRedisOpt())
		scheduler, err := cron.StartBlogCron(config.AppConfig.BlogCron, queue, logger)
		if err != nil {
			logger.Error("blog cron disabled", zap.String("schedule", config.AppConfig.BlogCron), zap.Error(err))
		} else {
			stopCron = func() { <-scheduler.Stop().Done() }
		}
	}

	hb := handlers.NewHandlerBundle(handlers.Deps{
		Area:     booking.DefaultServiceArea(),
		Rates:    booking.DefaultRateTable(),
		Payments: payment.NewPaymentHandler(logger),
		Chat:     chatSvc,
		Blogs:    blogSvc,
	})
	router := routes.NewRouter(hb)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var serveErr error
	select {
	case <-quit:
		logger.Info("server is shutting down")
	case serveErr = <-errCh:
		logger.Error("server failed", zap.Error(serveErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if stopCron != nil {
		stopCron()
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		queue.Close()
	}
	chatSvc.Wait()

	logger.Info("server stopped")
	return serveErr
}
