package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"corsair-server/internal/engine"
	"corsair-server/internal/server"
	"corsair-server/internal/version"
	"corsair-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath string
	var seed int64
	var port string
	flag.StringVar(&configPath, "config", "", "Path to TOML config file")
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random / config value)")
	flag.StringVar(&port, "port", "", "HTTP port (overrides config)")
	flag.Parse()

	logger.Log.Info("Starting Corsair server...")
	logger.Log.Info(version.String())

	cfg, err := engine.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}

	// Флаги перекрывают файл
	if seed != 0 {
		cfg.World.Seed = seed
	}
	if port != "" {
		cfg.Server.Port = port
	}
	logger.Log.Infof("World seed: %d", cfg.World.Seed)

	// 2. Инициализация ядра
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Engine init error: ", err)
	}
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Server.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
