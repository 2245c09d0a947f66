package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/courtbook/courtbook/internal/config"
	"github.com/courtbook/courtbook/internal/db"
	"github.com/courtbook/courtbook/internal/logger"
	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/repository"
	"github.com/courtbook/courtbook/internal/seed"
	"github.com/courtbook/courtbook/internal/service"
	transport "github.com/courtbook/courtbook/internal/transport/http"
	"github.com/courtbook/courtbook/pkg/mq"
	"github.com/courtbook/courtbook/pkg/obs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, continuing with environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := obs.InitTracer(ctx, "courtbook", cfg.OTLPEndpoint, cfg.Env)
		if err != nil {
			log.Fatalf("init tracer: %v", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	gormDB, err := db.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	slotRepo := repository.NewGormSlotRepository(gormDB)
	courtRepo := repository.NewGormCourtRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	userRepo := repository.NewGormUserRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	if cfg.SeedOnStart {
		if err := seed.Run(ctx, courtRepo, slotRepo, cfg.SeedDate); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	var pub *mq.Publisher
	if cfg.AMQPURL != "" {
		pub, err = mq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("init publisher: %v", err)
		}
		defer pub.Close()
	}

	identitySvc := service.NewIdentityService(userRepo, eventRepo, time.Duration(cfg.JWTExpireMin)*time.Minute)
	bookingSvc := service.NewBookingService(slotRepo, courtRepo, bookingRepo, eventRepo, pub)

	router := transport.NewRouter(identitySvc, bookingSvc, cfg.CORSOrigin)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()

	logger.Log.Info("shutting down http server")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Log.Error("shutdown", "err", err)
	}
}
