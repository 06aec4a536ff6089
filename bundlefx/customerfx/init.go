package customerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/service/customers/http"
	"ecommerce_record_service/service/customers/repository"
	"ecommerce_record_service/service/customers/usecase"
)

var Module = fx.Options(
	fx.Provide(
		provideCustomerRepository,
		provideCustomerUseCase,
		provideCustomerHandler,
	),
	fx.Invoke(http.RegisterCustomerRoutes), // register routes
)

func provideCustomerRepository(dbConn *gorm.DB) repository.ICustomerRepository {
	return repository.NewCustomerRepository(dbConn)
}

func provideCustomerUseCase(customerRepo repository.ICustomerRepository, recordCache cache.RecordCache) usecase.ICustomerUseCase {
	return usecase.NewCustomerUseCase(customerRepo, recordCache)
}

func provideCustomerHandler(customerUseCase usecase.ICustomerUseCase, validator *httpx.Validator) *http.CustomerController {
	return http.NewCustomerController(customerUseCase, validator)
}
