// Package wire 提供依赖注入配置
package wire

import (
	"dreamtale-api/internal/config"
	"dreamtale-api/internal/infrastructure/persistence/postgres"
	"dreamtale-api/internal/infrastructure/persistence/redis"
	"dreamtale-api/internal/interfaces/http/middleware"
	"dreamtale-api/internal/workflow/node"
	workflowport "dreamtale-api/internal/workflow/port"
)

// BootstrapDeps 数据库初始化所需的最小依赖（用于 bootstrap）
type BootstrapDeps struct {
	PgClient *postgres.Client
	UserRepo *postgres.UserRepository
}

// ProvidePostgresClient 提供 PostgreSQL 客户端
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideStageRunner 提供阶段执行器（使用默认提供商）
func ProvideStageRunner(cfg *config.Config, factory workflowport.ChatModelFactory) *node.Runner {
	return node.NewRunner(factory, cfg.LLM.DefaultProvider)
}

// ProvideAuthConfig 提供认证配置
func ProvideAuthConfig(cfg *config.Config) middleware.AuthConfig {
	return middleware.AuthConfig{
		Secret:    cfg.Security.JWT.Secret,
		Issuer:    cfg.Security.JWT.Issuer,
		SkipPaths: middleware.DefaultSkipPaths,
		Enabled:   cfg.Security.JWT.Enabled,
	}
}
