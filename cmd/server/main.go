package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"smartbin/internal/app/di"
	"smartbin/internal/app/router"
	"smartbin/internal/feature/classification/adapters/catalog"
	classhandler "smartbin/internal/feature/classification/transport/handler"
	classusecase "smartbin/internal/feature/classification/usecase"
	workspacehandler "smartbin/internal/feature/workspace/transport/handler"
	workspaceusecase "smartbin/internal/feature/workspace/usecase"
	"smartbin/internal/platform/http/handler"
	infraredis "smartbin/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	ctx := context.Background()

	// Redis（未設定または接続失敗時はキャッシュなしで起動）
	var rdb *redisv9.Client
	redisCfg := infraredis.LoadConfig()
	if !redisCfg.Enabled() {
		slog.Warn("REDIS_HOST is not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "addr", redisCfg.Addr(), "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Classifier（Redisキャッシュでラップ済み）
	classifier, err := di.NewClassifier(ctx, rdb)
	if err != nil {
		log.Fatalf("failed to create classifier: %v", err)
	}
	defer func() {
		if err := classifier.Close(); err != nil {
			slog.Error("Failed to close classifier", "error", err)
		}
	}()
	cat := catalog.NewCatalog()
	store := di.NewStateStore(rdb)

	// Usecase
	classUC := classusecase.NewClassificationUsecase(classifier, cat)
	workspaceUC := workspaceusecase.NewWorkspaceUsecase(store, classUC)

	// Handler
	classH := classhandler.NewClassificationHandler(classUC, cat)
	workspaceH := workspacehandler.NewWorkspaceHandler(workspaceUC)
	health := handler.NewHealth(handler.HealthInfo{
		Classifier: classifier.Mode,
		Categories: len(cat.Categories()),
		PingRedis:  pingFunc(rdb),
	})

	// ルータ生成
	r := router.NewRouter(health, classH, workspaceH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("SmartBin server starting", "port", port, "classifier", classifier.Mode, "redis", rdb != nil)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func pingFunc(rdb *redisv9.Client) func(ctx context.Context) error {
	if rdb == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
