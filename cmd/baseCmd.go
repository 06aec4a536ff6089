package cmd

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"ecommerce_record_service/pkg/metrics"
	"ecommerce_record_service/pkg/server"
)

type ServerConfig struct {
	Port int
}

func NewGinEngine(httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	engine := gin.Default()
	engine.Use(httpMetrics.Middleware())
	engine.GET("/metrics", httpMetrics.Handler())
	return engine
}

func providePort(port int) func() ServerConfig {
	return func() ServerConfig {
		return ServerConfig{Port: port}
	}
}

func StartHTTPServer(lc fx.Lifecycle, engine *gin.Engine, cfg ServerConfig) {
	srv := server.NewServer(engine, cfg.Port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			srv.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Stop(ctx)
		},
	})
}
