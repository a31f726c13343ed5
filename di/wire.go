//go:build wireinject
// +build wireinject

package di

import (
	"hotelhub/config"
	"hotelhub/infras/jwt"
	"hotelhub/infras/kafka"
	"hotelhub/infras/metrics"
	"hotelhub/infras/otel"
	"hotelhub/infras/postgres"
	"hotelhub/infras/redis"
	"hotelhub/permissions"
	"hotelhub/shared/cache"
	"hotelhub/shared/timezone"
	"hotelhub/transport/http"
	"hotelhub/transport/http/middleware"
	"hotelhub/transport/http/router"

	contractEvent "hotelhub/internal/domains/contract/event"
	contractRepository "hotelhub/internal/domains/contract/repository"
	contractScanner "hotelhub/internal/domains/contract/scanner"
	contractService "hotelhub/internal/domains/contract/service"
	contractHandler "hotelhub/internal/handlers/contract"

	hotelRepository "hotelhub/internal/domains/hotel/repository"
	hotelService "hotelhub/internal/domains/hotel/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	metrics.InitRegistry,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	wire.Bind(new(cache.Locker), new(cache.RedisCache)),
	wire.InterfaceValue(new(timezone.Clock), timezone.SystemClock{}),
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var contractDomain = wire.NewSet(
	contractRepository.New,
	contractEvent.New,
	contractService.New,
	contractScanner.New,
)

var domains = wire.NewSet(
	hotelDomain,
	contractDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	contractHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
