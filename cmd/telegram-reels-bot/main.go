package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reelfetch/telegram-reels-bot/internal/auth"
	tmsbot "github.com/reelfetch/telegram-reels-bot/internal/bot"
	"github.com/reelfetch/telegram-reels-bot/internal/config"
	"github.com/reelfetch/telegram-reels-bot/internal/downloads"
	"github.com/reelfetch/telegram-reels-bot/internal/extractor"
	"github.com/reelfetch/telegram-reels-bot/internal/handlers"
	"github.com/reelfetch/telegram-reels-bot/internal/logutils"
	"github.com/reelfetch/telegram-reels-bot/internal/metrics"
)

const updateTimeoutSeconds = 60

var flags config.Defaults

func main() {
	rootCmd := &cobra.Command{
		Use:   "telegram-reels-bot",
		Short: "Telegram bot that downloads Instagram reels and YouTube shorts",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&flags.Token, "token", "t", "",
		"Telegram bot token. You may also specify this via the TELEGRAM_BOT_TOKEN environment variable.")
	rootCmd.Flags().StringVarP(&flags.Password, "password", "p", "",
		"Bot password. If specified, only chats authenticated with /auth <password> can use the bot. Also: BOT_PASSWORD.")
	rootCmd.Flags().StringVarP(&flags.ChatIDs, "chat-ids", "c", "",
		"Comma-separated chat IDs to authenticate immediately. Also: CHAT_IDS.")
	rootCmd.Flags().StringVarP(&flags.AdminUserID, "admin-user-id", "a", "",
		"User ID allowed to run /clear_auth and /exit. Also: ADMIN_USER_ID.")
	rootCmd.Flags().StringVarP(&flags.LogLevel, "log-level", "l", "info",
		"Log level (debug, info, warn, error). Also: LOG_LEVEL.")

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("Bot terminated")
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file loaded")
	}

	cfg, err := config.NewConfig(flags)
	if err != nil {
		return err
	}

	logutils.InitLogger(cfg.LogLevel)

	botInstance, err := tmsbot.InitBot(cfg.BotToken)
	if err != nil {
		return err
	}

	registry := auth.NewRegistry(cfg.Password, cfg.PreauthChatIDs, cfg.AdminUserID)
	counter := metrics.NewCounter()
	orchestrator := downloads.NewOrchestrator(botInstance, extractor.NewAuto(), counter, cfg.DownloadDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := func() {
		botInstance.StopReceivingUpdates()
		cancel()
	}

	router := handlers.NewRouter(botInstance, registry, counter, orchestrator, shutdown)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logrus.Infof("Received signal %v, shutting down", sig)
		shutdown()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds
	updates := botInstance.GetUpdatesChan(u)

	logrus.Info("Bot is running...")

	var wg sync.WaitGroup
	for update := range updates {
		wg.Add(1)
		go func(update tgbotapi.Update) {
			defer wg.Done()
			router.HandleUpdate(ctx, &update)
		}(update)
	}
	wg.Wait()

	logrus.Info("Bot stopped")
	return nil
}
