package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aditya10866/personal-pomo/internal/config"
	"github.com/aditya10866/personal-pomo/internal/logger"
	"github.com/aditya10866/personal-pomo/internal/notify"
	"github.com/aditya10866/personal-pomo/internal/repository"
	"github.com/aditya10866/personal-pomo/internal/server"
	"github.com/aditya10866/personal-pomo/internal/service"
	"github.com/aditya10866/personal-pomo/internal/timer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLogger := logger.New()
	defer func() { _ = zapLogger.Sync() }()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("open database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	sessionRepo := repository.NewSessionRepository(db)
	habitRepo := repository.NewHabitRepository(db)

	sessionSvc := service.NewSessionService(sessionRepo)
	habitSvc := service.NewHabitService(habitRepo)
	reportSvc := service.NewReportService(sessionRepo, habitRepo)

	scheduler := service.NewSchedulerService(time.Local)

	tm := timer.New(scheduler, sessionSvc, zapLogger, cfg.SessionMinutes)
	defer tm.Stop()

	// Nightly rebuild of the cached daily totals from raw sessions.
	if _, err := scheduler.ScheduleDaily("04:00", func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := sessionSvc.ReconcileTotals(jobCtx); err != nil {
			zapLogger.Error("reconcile daily totals", zap.Error(err))
		}
	}); err != nil {
		zapLogger.Fatal("schedule reconciliation", zap.Error(err))
	}

	if cfg.ReportEnabled() {
		notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, reportSvc, zapLogger)
		if err != nil {
			zapLogger.Fatal("telegram notifier", zap.Error(err))
		}
		if _, err := scheduler.ScheduleDaily(cfg.ReportTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := notifier.SendDailyReport(jobCtx); err != nil {
				zapLogger.Error("daily report", zap.Error(err))
			}
		}); err != nil {
			zapLogger.Fatal("schedule daily report", zap.Error(err))
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	srv := server.New(cfg.HTTPAddr, db, sessionSvc, habitSvc, tm, zapLogger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	zapLogger.Info("personal-pomo started", zap.String("addr", cfg.HTTPAddr))

	select {
	case <-ctx.Done():
		if err := srv.Stop(); err != nil {
			zapLogger.Error("http shutdown", zap.Error(err))
		}
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("http server", zap.Error(err))
		}
	}

	zapLogger.Info("shutdown complete")
}
