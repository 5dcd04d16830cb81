package main

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"marketbot/internal/config"
	"marketbot/internal/gateway"
	"marketbot/internal/handler"
	"marketbot/internal/repository/postgres"
	"marketbot/internal/server"
	"marketbot/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := connectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := runMigrations(cfg); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database ready")

	userRepo := postgres.NewUserRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	factory := gateway.NewFactory(cfg.Marketplace.BaseURL, logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:     cfg.BotToken,
		ParseMode: tele.ModeHTML,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("failed to create bot", zap.Error(err))
	}

	sender := handler.NewBotSender(bot)

	userSvc := service.NewUserService(userRepo, auditRepo, factory, logger)
	adminSvc := service.NewAdminService(adminRepo, logger)
	if err := adminSvc.Load(); err != nil {
		logger.Fatal("failed to load administrators", zap.Error(err))
	}
	adminSvc.Bootstrap(cfg.Admin.DefaultAdminID)
	broadcastSvc := service.NewBroadcastService(userRepo, auditRepo, sender, logger)

	h := handler.New(bot, userSvc, adminSvc, broadcastSvc, factory, sender, handler.Options{
		ContactHandle: cfg.Admin.ContactHandle,
		SupportGroup:  cfg.Admin.SupportGroup,
	}, logger)
	h.RegisterHandlers()

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(),
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", zap.Error(err))
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		_ = httpServer.Close()
		bot.Stop()
	}()

	logger.Info("bot started")
	bot.Start()
}

// connectDatabase opens the connection, retrying while the database
// comes up.
func connectDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.Ping()
			if err == nil {
				return db, nil
			}
		}

		logger.Info("waiting for database",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries))
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, err)
}

func runMigrations(cfg *config.Config) error {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
