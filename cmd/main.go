package main

import (
	"os"

	"cachebox/internal/config"
	"cachebox/internal/server"
	"cachebox/pkg/logger"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	conf, err := config.NewConfig(dir)
	if err != nil {
		panic(err)
	}

	if err := logger.Init(conf.LogLevel, conf.LogFile); err != nil {
		panic(err)
	}

	s, err := server.New(conf)
	if err != nil {
		panic(err)
	}

	logger.Info("cachebox listening", "addr", conf.Listen, "capacity", conf.Capacity)
	if err := s.Run(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
