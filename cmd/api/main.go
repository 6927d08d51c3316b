package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/fitgroups-api/internal/api"
	"github.com/baharkarakas/fitgroups-api/internal/auth"
	"github.com/baharkarakas/fitgroups-api/internal/config"
	"github.com/baharkarakas/fitgroups-api/internal/db"
	"github.com/baharkarakas/fitgroups-api/internal/events"
	"github.com/baharkarakas/fitgroups-api/internal/logger"
	"github.com/baharkarakas/fitgroups-api/internal/metrics"
	"github.com/baharkarakas/fitgroups-api/internal/repository/memory"
	"github.com/baharkarakas/fitgroups-api/internal/repository/postgres"
	"github.com/baharkarakas/fitgroups-api/internal/services"
	"github.com/baharkarakas/fitgroups-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	tm, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		log.Error("token manager", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repos postgres.Repositories
	switch cfg.Store {
	case "memory":
		st := memory.New()
		repos = postgres.Repositories{
			Users:     st.Users(),
			Groups:    st.Groups(),
			Routines:  st.Routines(),
			AuditLogs: st.AuditLogs(),
		}
		log.Warn("using in-memory store; data is lost on restart")
	default:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				log.Error("migrations", "err", err)
				os.Exit(1)
			}
		}
		repos = postgres.NewRepositories(pool)
	}

	wp := worker.NewPool(cfg.Workers)
	sinks := []events.Publisher{events.NewAuditSink(repos.AuditLogs)}
	if len(cfg.KafkaBrokers) > 0 {
		ks := events.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer ks.Close()
		sinks = append(sinks, ks)
		log.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	// deferred calls run LIFO: the pool drains before the sinks and pool close
	defer wp.Stop()
	dispatcher := events.NewDispatcher(wp, log, sinks...)

	userSvc := services.NewUserService(repos.Users, tm, dispatcher)
	groupSvc := services.NewGroupService(repos.Groups, dispatcher)
	routineSvc := services.NewRoutineService(repos.Routines, dispatcher)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		Tokens:     tm,
		UserSvc:    userSvc,
		GroupSvc:   groupSvc,
		RoutineSvc: routineSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
