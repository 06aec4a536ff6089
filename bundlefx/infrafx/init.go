package infrafx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecommerce_record_service/pkg/config"
	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/pkg/infra/database"
	"ecommerce_record_service/pkg/infra/queue"
	"ecommerce_record_service/pkg/metrics"
	customers "ecommerce_record_service/service/customers/model/postgres"
	orders "ecommerce_record_service/service/orders/model/postgres"
	products "ecommerce_record_service/service/products/model/postgres"
)

// Models lists every table in dependency order.
var Models = []interface{}{
	&customers.Customer{},
	&customers.CustomerAccount{},
	&products.Product{},
	&orders.Order{},
	&orders.OrderItem{},
}

var Module = fx.Options(
	fx.Provide(
		config.FromEnv,
		provideDB,
		provideRedisDB,
		provideRecordCache,
		provideOrderPublisher,
		httpx.NewValidator,
		metrics.NewHTTPMetrics,
	),
)

func provideDB(cfg config.Config, lc fx.Lifecycle) (*gorm.DB, error) {
	return database.Connect(cfg, lc, Models...)
}

func provideRedisDB(cfg config.Config, lc fx.Lifecycle) (*redis.Client, error) {
	return cache.NewRedisClient(lc, cfg.RedisURL)
}

func provideRecordCache(client *redis.Client, cfg config.Config) cache.RecordCache {
	return cache.NewRecordCache(client, cfg.CacheTTL)
}

func provideOrderPublisher(cfg config.Config) (queue.Publisher, error) {
	if cfg.OrderQueueURL == "" {
		return queue.NoopPublisher{}, nil
	}
	client, err := queue.NewSQSClient(context.Background())
	if err != nil {
		return nil, err
	}
	return queue.NewPublisher(client, cfg.OrderQueueURL), nil
}
