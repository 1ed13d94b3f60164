package main

import (
	"clinic/config"
	"clinic/di"
	"clinic/shared/logger"

	_ "clinic/docs"
)

// @title Clinic Booking API
// @version 1.0
// @description Clinic booking backend: public appointment booking and catalog reads, administrative appointment management.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
