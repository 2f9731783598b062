package handler

import (
	"net/http"
	"sync"

	"friendlydate/config"
	"friendlydate/di"
	"friendlydate/shared/logger"
	transport "friendlydate/transport/http"
)

var (
	once    sync.Once
	service *transport.HTTP
)

// Handler is the serverless entrypoint. The service is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
