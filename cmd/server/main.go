package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/memehouse/crew-ops/internal/config"
	"github.com/memehouse/crew-ops/internal/database"
	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/handler"
	"github.com/memehouse/crew-ops/internal/middleware"
	"github.com/memehouse/crew-ops/internal/model"
	"github.com/memehouse/crew-ops/internal/queue"
	"github.com/memehouse/crew-ops/internal/repository"
	"github.com/memehouse/crew-ops/internal/roster"
	"github.com/memehouse/crew-ops/internal/router"
	"github.com/memehouse/crew-ops/internal/seed"
	queue_publisher "github.com/memehouse/crew-ops/internal/service"

	"github.com/google/uuid"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if cfg.SeedRoster {
		n, err := seed.Roster(ctx, db)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		if n > 0 {
			log.Printf("seed: inserted %d operators", n)
		}
	}
	if err := seed.EnsureEvent(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	opRepo := repository.NewOperatorRepo(db)
	shiftRepo := repository.NewShiftRepo(db)
	eventRepo := repository.NewEventRepo(db)

	// The roster snapshot forwards accepted patches to MySQL and publishes
	// audit events to RabbitMQ, both off the request path.
	rst := roster.New(
		func(ctx context.Context, id uint64, cols map[string]any) error {
			_, err := opRepo.Patch(ctx, id, cols)
			return err
		},
		func(ctx context.Context, op model.Operator, role string, fields []string) error {
			return queue_publisher.PublishOperatorPatched(ctx, queue.OperatorPatchedEvent{
				EventID:    uuid.NewString(),
				OperatorID: op.ID,
				OpCode:     op.OpCode,
				Name:       op.Name,
				Role:       role,
				Fields:     fields,
				Risk:       op.Risk,
				PatchedAt:  time.Now().UTC().Format(time.RFC3339),
			})
		},
	)

	ops, err := opRepo.List(ctx)
	if err != nil {
		log.Fatalf("load roster: %v", err)
	}
	for i := range ops {
		// Risk is never stored; derive it before the snapshot goes live.
		ops[i].Risk = engine.ClassifyRisk(ops[i])
	}
	rst.Load(ops)
	log.Printf("roster: loaded %d operators", rst.Len())

	e := echo.New()
	e.HideBanner = true

	// Redis is optional: when unreachable the cache and rate limiter
	// middlewares become no-ops and the server still runs.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	h := router.Handlers{
		Health:   handler.Health(db),
		Session:  &handler.SessionHandler{Secret: cfg.JWTSecret, TTLMin: cfg.SessionTTLMin},
		Operator: &handler.OperatorHandler{Roster: rst, Repo: opRepo},
		Zone:     &handler.ZoneHandler{Roster: rst},
		Shift:    &handler.ShiftHandler{Repo: shiftRepo, Roster: rst},
		Event:    &handler.EventHandler{Repo: eventRepo},
		Stats:    &handler.StatsHandler{Roster: rst, ShiftRepo: shiftRepo, EventRepo: eventRepo},
	}
	router.RegisterRoutes(e, h, cfg.JWTSecret)

	// Background audit consumer; reconnects on its own.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit-consumer: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
