//go:build wireinject
// +build wireinject

package di

import (
	"friendlydate/config"
	"friendlydate/infras/otel"
	"friendlydate/infras/redis"
	"friendlydate/shared/cache"
	"friendlydate/transport/http"
	"friendlydate/transport/http/middleware"
	"friendlydate/transport/http/router"

	datetimeService "friendlydate/internal/domains/datetime/service"
	datetimeHandler "friendlydate/internal/handlers/datetime"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var datetimeDomain = wire.NewSet(
	datetimeService.New,
)

var domains = wire.NewSet(
	datetimeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	datetimeHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
