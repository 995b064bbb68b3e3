//go:build wireinject
// +build wireinject

package di

import (
	"drive4less/config"
	"drive4less/infras/jwt"
	"drive4less/infras/kafka"
	"drive4less/infras/otel"
	"drive4less/infras/postgres"
	"drive4less/infras/redis"
	"drive4less/infras/s3"
	"drive4less/shared/cache"
	"drive4less/transport/http"
	"drive4less/transport/http/middleware"
	"drive4less/transport/http/router"

	authService "drive4less/internal/domains/auth/service"
	catalogService "drive4less/internal/domains/catalog/service"
	contentService "drive4less/internal/domains/content/service"
	vehicleRepository "drive4less/internal/domains/vehicle/repository"
	vehicleService "drive4less/internal/domains/vehicle/service"

	authHandler "drive4less/internal/handlers/auth"
	catalogHandler "drive4less/internal/handlers/catalog"
	contentHandler "drive4less/internal/handlers/content"
	vehicleHandler "drive4less/internal/handlers/vehicle"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
	vehicleService.New,
)

var catalogDomain = wire.NewSet(
	catalogService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var contentDomain = wire.NewSet(
	contentService.New,
)

var domains = wire.NewSet(
	vehicleDomain,
	catalogDomain,
	authDomain,
	contentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	vehicleHandler.New,
	catalogHandler.New,
	contentHandler.New,
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
