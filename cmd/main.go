package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"ridesharex/internal/locations"
	"ridesharex/internal/payments"
	"ridesharex/internal/users"
	"ridesharex/migrations"
	"ridesharex/pkg/config"
	"ridesharex/pkg/db"
	"ridesharex/pkg/hash"
	"ridesharex/pkg/jwt"
	"ridesharex/pkg/kafka"
	rredis "ridesharex/pkg/redis"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── 1. Configuration ──
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := jwt.Init(cfg.JWTSecret); err != nil {
		log.Fatal(err)
	}

	// ── 2. PostgreSQL ──
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := database.RunMigrations(ctx, migrations.FS); err != nil {
		log.Fatal("migrations failed:", err)
	}

	// ── 3. Redis ──
	redisClient, err := rredis.NewClient(cfg.RedisAddr)
	if err != nil {
		log.Fatal(err)
	}
	defer redisClient.Close()

	// ── 4. Kafka ──
	kafkaClient := kafka.NewClient(cfg.KafkaBrokers)
	if err := kafkaClient.EnsureTopics(ctx,
		kafka.TopicUserRegistered,
		kafka.TopicPaymentProcessed,
	); err != nil {
		log.Fatal(err)
	}

	// ── 5. Services ──
	userSvc := users.NewService(users.NewPostgresStore(database.Pool), hash.NewBcrypt(), kafkaClient)
	locationSvc := locations.NewService(locations.NewPostgresStore(database.Pool), redisClient)
	paymentSvc := payments.NewService(payments.NewPostgresStore(database.Pool), kafkaClient)

	// ── 6. HTTP router ──
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(jwt.OptionalAuth)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"ridesharex"}`))
	})

	r.Mount("/auth", users.NewHandler(userSvc).Routes())
	r.Mount("/api/locations", locations.NewHandler(locationSvc).Routes())
	r.Mount("/api/payments", payments.NewHandler(paymentSvc).Routes())

	// ── 7. Start server ──
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Printf("ridesharex listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// ── 8. Graceful shutdown ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()
	srv.Shutdown(shutCtx)
	cancel()
}
