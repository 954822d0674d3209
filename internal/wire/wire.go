//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"dreamtale-api/internal/application/story"
	"dreamtale-api/internal/config"
	"dreamtale-api/internal/domain/repository"
	"dreamtale-api/internal/infrastructure/llm"
	"dreamtale-api/internal/infrastructure/persistence/postgres"
	"dreamtale-api/internal/infrastructure/persistence/redis"
	"dreamtale-api/internal/interfaces/http/handler"
	"dreamtale-api/internal/interfaces/http/middleware"
	"dreamtale-api/internal/interfaces/http/router"
	"dreamtale-api/internal/workflow/node"
	workflowport "dreamtale-api/internal/workflow/port"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		PostgresSet,
		RedisSet,
		StorySet,
		RouterSet,
	)
	return nil, nil, nil
}

// InitializeBootstrap 仅初始化 PostgreSQL 数据层（用于 bootstrap）
func InitializeBootstrap(ctx context.Context, cfg *config.Config) (*BootstrapDeps, func(), error) {
	wire.Build(
		ProvidePostgresClient,
		postgres.NewUserRepository,
		wire.Struct(new(BootstrapDeps), "*"),
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewTxManager,
	postgres.NewStoryRepository,
	postgres.NewStoryRevisionRepository,
	postgres.NewUserRepository,
	wire.Bind(new(repository.Transactor), new(*postgres.TxManager)),
	wire.Bind(new(repository.StoryRepository), new(*postgres.StoryRepository)),
	wire.Bind(new(repository.StoryRevisionRepository), new(*postgres.StoryRevisionRepository)),
	wire.Bind(new(repository.UserRepository), new(*postgres.UserRepository)),
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewCache,
	redis.NewRateLimiter,
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
)

// StorySet 故事生成与编辑提供者集合
var StorySet = wire.NewSet(
	llm.NewEinoFactory,
	wire.Bind(new(workflowport.ChatModelFactory), new(*llm.EinoFactory)),
	ProvideStageRunner,
	wire.Bind(new(workflowport.TextGenerator), new(*node.Runner)),
	story.NewGenerator,
	story.NewEditResolver,
	story.NewService,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	ProvideAuthConfig,
	handler.NewAuthHandler,
	handler.NewHealthHandler,
	handler.NewStoryHandler,
	wire.Struct(new(router.Deps), "*"),
	router.New,
)
