package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/cleandrop/internal/config"
	"github.com/example/cleandrop/internal/routes"
	"github.com/example/cleandrop/internal/seed"
	"github.com/example/cleandrop/internal/services"
	"github.com/example/cleandrop/internal/session"
)

func main() {
	cfg := config.Load()

	data, err := seed.Load(time.Now())
	if err != nil {
		log.Fatalf("seed.Load error: %v", err)
	}

	var notifier session.Notifier = session.LogNotifier{}
	if telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat); telegram.Enabled() {
		notifier = telegram
	}

	sf, err := routes.NewStorefront(data,
		session.WithDelay(session.FixedDelay(cfg.AuthLatency)),
		session.WithNotifier(notifier),
	)
	if err != nil {
		log.Fatalf("storefront error: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "CleanDrop Storefront",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, sf, cfg)

	log.Printf("Loaded %d products and %d users", sf.Catalog.Len(), len(data.Users))
	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
