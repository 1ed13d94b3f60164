package handler

import (
	"net/http"

	"clinic/config"
	"clinic/di"
	"clinic/shared/logger"

	_ "clinic/docs"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
