package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/leadrelay/internal/compress"
	"github.com/wellywell/leadrelay/internal/config"
	"github.com/wellywell/leadrelay/internal/db"
	"github.com/wellywell/leadrelay/internal/handlers"
	"github.com/wellywell/leadrelay/internal/metrics"
	"github.com/wellywell/leadrelay/internal/relay"
	"github.com/wellywell/leadrelay/internal/router"
	"github.com/wellywell/leadrelay/internal/telegram"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Could not load .env: %s", err.Error())
	}

	conf, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}
	setupLogger(conf)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, conf)
	stop()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the server fails, then tears
// everything down. A serve failure is returned after cleanup.
func run(ctx context.Context, conf *config.ServerConfig) error {
	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		return err
	}

	var bot relay.Bot
	if conf.NotificationsEnabled() {
		client := telegram.NewClient(conf.TelegramAPIURL, conf.BotToken, conf.TelegramTimeout)
		me, err := client.GetMe(ctx)
		if err != nil {
			logger.Errorf("Telegram getMe failed, notifications may not arrive: %s", err.Error())
		} else {
			logger.Infof("Telegram bot @%s connected", me.Username)
		}
		bot = client
	} else {
		logger.Warn("BOT_TOKEN or ADMIN_CHAT_ID is not set, orders will be stored without notifications")
	}

	rl := relay.NewRelay(database, bot, relay.Options{
		AdminChatID:           conf.AdminChatID,
		EnforceTerminalStates: conf.EnforceTerminalStates,
		PollTimeout:           conf.PollTimeout,
	})

	relayCtx, stopRelay := context.WithCancel(context.Background())
	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		rl.Run(relayCtx)
	}()

	handlerSet := handlers.NewHandlerSet(database, rl)
	r := router.NewRouter(conf, handlerSet, compress.RequestUngzipper{})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- r.ListenAndServe()
	}()

	var failure error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err := <-serveErr:
		if err != nil {
			failure = fmt.Errorf("server stopped: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP shutdown: %s", err.Error())
	}

	stopRelay()
	<-relayDone
	rl.Wait()

	if err := database.Close(); err != nil {
		logger.Errorf("Closing database: %s", err.Error())
	}
	logger.Info("Stopped")
	return failure
}

func setupLogger(conf *config.ServerConfig) {
	if conf.LogFormat == "json" {
		logger.SetFormatter(&logger.JSONFormatter{})
	}
	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", conf.LogLevel)
		level = logger.InfoLevel
	}
	logger.SetLevel(level)
}
