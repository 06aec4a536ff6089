package productfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/service/products/http"
	"ecommerce_record_service/service/products/repository"
	"ecommerce_record_service/service/products/usecase"
)

var Module = fx.Options(
	fx.Provide(
		provideProductRepo,
		provideProductUseCase,
		provideProductHandler,
	),
	fx.Invoke(http.RegisterRoutes))

func provideProductRepo(db *gorm.DB) repository.IProductRepository {
	return repository.NewProductRepository(db)
}

func provideProductUseCase(repo repository.IProductRepository, recordCache cache.RecordCache) usecase.IProductUseCase {
	return usecase.NewProductUseCase(repo, recordCache)
}

func provideProductHandler(useCase usecase.IProductUseCase, validator *httpx.Validator) *http.ProductsHandler {
	return http.NewProductsHandler(useCase, validator)
}
