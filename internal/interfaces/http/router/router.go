// Package router 提供 HTTP 路由配置
package router

import (
	"dreamtale-api/internal/config"
	"dreamtale-api/internal/interfaces/http/handler"
	"dreamtale-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router HTTP 路由器
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

// Deps 路由依赖
type Deps struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Story       *handler.StoryHandler
	RateLimiter middleware.RateLimiter
}

// New 创建新的路由器
func New(cfg *config.Config, deps Deps) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine: engine,
		cfg:    cfg,
	}

	r.setupMiddleware(deps)
	r.setupRoutes(deps)

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware(deps Deps) {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}

	// 认证中间件
	r.engine.Use(middleware.Auth(middleware.AuthConfig{
		Secret:    r.cfg.Security.JWT.Secret,
		Issuer:    r.cfg.Security.JWT.Issuer,
		SkipPaths: middleware.DefaultSkipPaths,
		Enabled:   r.cfg.Security.JWT.Enabled,
	}))

	// 限流中间件（认证之后，按用户限流）
	r.engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:           r.cfg.Security.RateLimit.Enabled,
		RequestsPerSecond: r.cfg.Security.RateLimit.RequestsPerSecond,
		Burst:             r.cfg.Security.RateLimit.Burst,
	}, deps.RateLimiter))
}

// setupRoutes 配置路由
func (r *Router) setupRoutes(deps Deps) {
	// 系统端点
	r.engine.GET("/health", deps.Health.Health)
	r.engine.GET("/ready", deps.Health.Ready)
	r.engine.GET("/live", deps.Health.Live)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// API v1 路由组
	v1 := r.engine.Group("/v1")
	{
		// 认证管理
		auth := v1.Group("/auth")
		{
			auth.POST("/register", deps.Auth.Register)
			auth.POST("/login", deps.Auth.Login)
			auth.POST("/refresh", deps.Auth.RefreshToken)
			auth.POST("/logout", deps.Auth.Logout)
		}

		// 故事管理
		stories := v1.Group("/stories")
		{
			stories.GET("", deps.Story.List)
			stories.POST("", deps.Story.Create)
			stories.GET("/:id", deps.Story.Get)
			stories.PATCH("/:id", deps.Story.Update)
			stories.DELETE("/:id", deps.Story.Delete)
			stories.GET("/:id/revisions", deps.Story.ListRevisions)
		}
	}
}
