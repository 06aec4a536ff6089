package orderfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/pkg/infra/queue"
	"ecommerce_record_service/service/orders/http"
	"ecommerce_record_service/service/orders/repository"
	"ecommerce_record_service/service/orders/usecase"
)

var Module = fx.Options(
	fx.Provide(
		provideOrderRepo,
		provideOrderUseCase,
		provideOrderHandler,
	),
	fx.Invoke(http.RegisterRoutes))

func provideOrderRepo(db *gorm.DB) repository.IOrderRepository {
	return repository.NewOrderRepository(db)
}

func provideOrderUseCase(repo repository.IOrderRepository, recordCache cache.RecordCache, publisher queue.Publisher) usecase.IOrderUseCase {
	return usecase.NewOrderUseCase(repo, recordCache, publisher)
}

func provideOrderHandler(useCase usecase.IOrderUseCase, validator *httpx.Validator) *http.OrdersHandler {
	return http.NewOrdersHandler(useCase, validator)
}
