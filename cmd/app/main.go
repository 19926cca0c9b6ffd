package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kidsplatform/config"
	"kidsplatform/internal/application/usecase"
	"kidsplatform/internal/infrastructure/kv"
	"kidsplatform/internal/infrastructure/repository"
	"kidsplatform/internal/infrastructure/security"
	"kidsplatform/internal/middleware"
	"kidsplatform/internal/progression"
	handlers "kidsplatform/internal/transport/http"
	"kidsplatform/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
	}

	var store kv.Store
	switch cfg.StorageDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		pg := kv.NewPostgres(db)
		log.Println("Running migrations...")
		if err := pg.Migrate(); err != nil {
			log.Fatalf("Failed to migrate DB: %v", err)
		}
		store = pg
	case "redis":
		if rdb == nil {
			log.Fatal("STORAGE_DRIVER=redis requires REDIS_ADDR")
		}
		store = kv.NewRedis(rdb)
	case "memory":
		log.Println("Using in-memory storage; profiles will not survive a restart")
		store = kv.NewMemory()
	default:
		log.Fatalf("Unknown storage driver %q", cfg.StorageDriver)
	}

	repo := repository.NewProfileRepository(store)
	tracker := progression.NewTracker()
	tokenManager := security.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	pinHasher := security.NewPinHasher()
	uc := usecase.NewProfileUseCase(repo, tracker, tokenManager, pinHasher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := worker.NewDecaySweeper(uc, time.Duration(cfg.DecaySweepSeconds)*time.Second)
	sweeper.Start(ctx)

	router := handlers.NewRouter(
		handlers.NewProfileHandler(uc),
		handlers.NewProgressionHandler(uc),
		handlers.NewStoreHandler(uc),
		handlers.NewPetHandler(uc),
		middleware.NewRateLimiter(rdb),
		tokenManager,
		strings.Split(cfg.AllowOrigins, ","),
	)

	log.Printf("Kids platform running on %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
