//go:build wireinject
// +build wireinject

package di

import (
	"camping/config"
	"camping/infras/jwt"
	"camping/infras/kafka"
	"camping/infras/otel"
	"camping/infras/postgres"
	"camping/infras/redis"
	"camping/infras/s3"
	"camping/permissions"
	"camping/shared/cache"
	gRepo "camping/shared/repository"
	"camping/transport/http"
	"camping/transport/http/middleware"
	"camping/transport/http/router"

	authService "camping/internal/domains/auth/service"
	bookingRepository "camping/internal/domains/booking/repository"
	bookingService "camping/internal/domains/booking/service"
	campingRepository "camping/internal/domains/camping/repository"
	campingService "camping/internal/domains/camping/service"
	userRepository "camping/internal/domains/user/repository"
	userService "camping/internal/domains/user/service"
	authHandler "camping/internal/handlers/auth"
	bookingHandler "camping/internal/handlers/booking"
	campingHandler "camping/internal/handlers/camping"
	userHandler "camping/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(gRepo.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var campingDomain = wire.NewSet(
	campingRepository.New,
	campingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	campingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	campingHandler.New,
	bookingHandler.New,
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
