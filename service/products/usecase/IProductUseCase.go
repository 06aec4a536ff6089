package usecase

import (
	"context"
	"log"

	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/service/products/model/postgres"
	"ecommerce_record_service/service/products/model/request"
	"ecommerce_record_service/service/products/model/response"
	"ecommerce_record_service/service/products/repository"
)

type IProductUseCase interface {
	CreateProduct(ctx context.Context, dto request.ProductDTO) (response.ProductResponseDTO, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]response.ProductResponseDTO, error)
	GetProductByID(ctx context.Context, id uint) (response.ProductResponseDTO, error)
	UpdateProduct(ctx context.Context, id uint, dto request.ProductDTO) (response.ProductResponseDTO, error)
	DeleteProduct(ctx context.Context, id uint) error
}

const productEntity = "product"

type productUseCase struct {
	productRepo repository.IProductRepository
	cache       cache.RecordCache
}

func NewProductUseCase(productRepo repository.IProductRepository, recordCache cache.RecordCache) IProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		cache:       recordCache,
	}
}

func (p *productUseCase) CreateProduct(ctx context.Context, dto request.ProductDTO) (response.ProductResponseDTO, error) {
	product := postgres.Product{
		Name:  dto.Name,
		Price: *dto.Price,
	}

	if err := p.productRepo.Create(ctx, &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return response.ProductResponseDTO{}, err
	}

	return toProductResponse(product), nil
}

func (p *productUseCase) ListProducts(ctx context.Context, page, pageSize int) ([]response.ProductResponseDTO, error) {
	products, err := p.productRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return nil, err
	}

	result := make([]response.ProductResponseDTO, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}
	return result, nil
}

func (p *productUseCase) GetProductByID(ctx context.Context, id uint) (response.ProductResponseDTO, error) {
	var cached response.ProductResponseDTO
	hit, version, err := p.cache.Get(ctx, productEntity, id, &cached)
	if err != nil {
		log.Printf("Error reading cached product %d: %v", id, err)
	}
	if hit {
		return cached, nil
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return response.ProductResponseDTO{}, err
	}

	result := toProductResponse(product)
	if err := p.cache.Set(ctx, productEntity, id, version, result); err != nil {
		log.Printf("Failed to write cache for product %d: %v", id, err)
	}
	return result, nil
}

func (p *productUseCase) UpdateProduct(ctx context.Context, id uint, dto request.ProductDTO) (response.ProductResponseDTO, error) {
	product, err := p.productRepo.Update(ctx, id, postgres.Product{
		Name:  dto.Name,
		Price: *dto.Price,
	})
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return response.ProductResponseDTO{}, err
	}

	p.invalidate(ctx, id)
	return toProductResponse(product), nil
}

func (p *productUseCase) DeleteProduct(ctx context.Context, id uint) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return err
	}

	p.invalidate(ctx, id)
	return nil
}

func (p *productUseCase) invalidate(ctx context.Context, id uint) {
	if err := p.cache.Invalidate(ctx, productEntity, id); err != nil {
		log.Printf("Failed to invalidate cached product %d: %v", id, err)
	}
}

func toProductResponse(product postgres.Product) response.ProductResponseDTO {
	return response.ProductResponseDTO{
		ID:    product.ID,
		Name:  product.Name,
		Price: response.Price{Decimal: product.Price},
	}
}
