package main

import (
	"friendlydate/config"
	"friendlydate/di"
	"friendlydate/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
