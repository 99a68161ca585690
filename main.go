package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/abstractions"
	"telegram-schedule-bot-core/bot"
	"telegram-schedule-bot-core/cache"
	"telegram-schedule-bot-core/configuration"
	"telegram-schedule-bot-core/providers"
	"telegram-schedule-bot-core/services"
)

func main() {
	_ = godotenv.Load()

	config, err := configuration.Load("./configs/config.yml")

	if err != nil {
		panic(err)
	}

	if config.TelegramTokenBot == "" {
		logrus.Fatalln("Telegram token is not configured, set TELEGRAM_TOKEN_BOT")
	}

	scheduleProvider := providers.NewScheduleProvider(config)
	sessionProvider := buildSessionProvider(config)

	scheduleService := services.NewScheduleService(scheduleProvider)
	sessionService := services.NewSessionService(sessionProvider)
	engine := services.NewConversationEngine(scheduleService, sessionService)

	api, err := bot.NewApi(config)

	if err != nil {
		panic(err)
	}

	handler := bot.NewHandler(engine, api)

	ctx, cancel := context.WithCancel(context.Background())
	go handler.Run(ctx)

	logrus.Infoln("Bot started (multi-user schedules)")

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
	<-exit

	cancel()
}

func buildSessionProvider(config configuration.Configuration) abstractions.ISessionProvider {
	switch config.SessionSettings.Backend {
	case configuration.SessionBackendRedis:
		common, err := cache.NewCommonProvider(config.SessionSettings.RedisAddress)

		if err != nil {
			panic(err)
		}

		return cache.NewSessionCacheProvider(common)
	case configuration.SessionBackendMemory:
		return nil
	default:
		return providers.NewSessionProvider(config)
	}
}
