package usecase

import (
	"context"
	"log"
	"time"

	"ecommerce_record_service/pkg/apperr"
	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/pkg/infra/queue"
	"ecommerce_record_service/service/orders/model/postgres"
	"ecommerce_record_service/service/orders/model/request"
	"ecommerce_record_service/service/orders/model/response"
	"ecommerce_record_service/service/orders/repository"
)

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, dto request.CreateOrderDTO) (response.OrderResponseDTO, error)
	ListOrders(ctx context.Context, page, pageSize int) ([]response.OrderResponseDTO, error)
	// GetOrderByID also backs the track route; there is no separate status model.
	GetOrderByID(ctx context.Context, id uint) (response.OrderResponseDTO, error)
	UpdateOrder(ctx context.Context, id uint, dto request.UpdateOrderDTO) (response.OrderResponseDTO, error)
	DeleteOrder(ctx context.Context, id uint) error
	ListItems(ctx context.Context, orderID uint) ([]response.OrderItemResponseDTO, error)
	AddItems(ctx context.Context, orderID uint, dto request.AddItemsDTO) ([]response.OrderItemResponseDTO, error)
}

const orderEntity = "order"

type orderUseCase struct {
	orderRepo repository.IOrderRepository
	cache     cache.RecordCache
	publisher queue.Publisher
	now       func() time.Time
}

func NewOrderUseCase(orderRepo repository.IOrderRepository, recordCache cache.RecordCache, publisher queue.Publisher) IOrderUseCase {
	return &orderUseCase{
		orderRepo: orderRepo,
		cache:     recordCache,
		publisher: publisher,
		now:       time.Now,
	}
}

func (o *orderUseCase) PlaceOrder(ctx context.Context, dto request.CreateOrderDTO) (response.OrderResponseDTO, error) {
	orderDate := postgres.NewDate(o.now())
	if dto.OrderDate != "" {
		parsed, err := postgres.ParseDate(dto.OrderDate)
		if err != nil {
			return response.OrderResponseDTO{}, &apperr.ValidationError{Fields: map[string]string{"order_date": "must be a date in YYYY-MM-DD format"}}
		}
		orderDate = parsed
	}

	order := postgres.Order{
		OrderDate:  orderDate,
		CustomerID: dto.CustomerID,
	}
	items := toOrderItems(dto.Items)

	if err := o.orderRepo.Create(ctx, &order, items); err != nil {
		log.Printf("Error placing order for customer %d: %v", dto.CustomerID, err)
		return response.OrderResponseDTO{}, err
	}
	log.Printf("Placed order %d for customer %d with %d item(s)", order.ID, order.CustomerID, len(items))

	result := toOrderResponse(order, items)
	if err := o.publisher.PublishOrderPlaced(ctx, queue.OrderPlacedEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		OrderDate:  result.OrderDate,
		ItemCount:  len(items),
	}); err != nil {
		// the order is committed; a lost event is not worth failing the request
		log.Printf("Failed to publish order placed event for order %d: %v", order.ID, err)
	}

	return result, nil
}

func (o *orderUseCase) ListOrders(ctx context.Context, page, pageSize int) ([]response.OrderResponseDTO, error) {
	orders, err := o.orderRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return nil, err
	}

	result := make([]response.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order, nil))
	}
	return result, nil
}

func (o *orderUseCase) GetOrderByID(ctx context.Context, id uint) (response.OrderResponseDTO, error) {
	var cached response.OrderResponseDTO
	hit, version, err := o.cache.Get(ctx, orderEntity, id, &cached)
	if err != nil {
		log.Printf("Error reading cached order %d: %v", id, err)
	}
	if hit {
		return cached, nil
	}

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return response.OrderResponseDTO{}, err
	}
	items, err := o.orderRepo.ListItems(ctx, id)
	if err != nil {
		return response.OrderResponseDTO{}, err
	}

	result := toOrderResponse(order, items)
	if err := o.cache.Set(ctx, orderEntity, id, version, result); err != nil {
		log.Printf("Failed to write cache for order %d: %v", id, err)
	}
	return result, nil
}

func (o *orderUseCase) UpdateOrder(ctx context.Context, id uint, dto request.UpdateOrderDTO) (response.OrderResponseDTO, error) {
	orderDate, err := postgres.ParseDate(dto.OrderDate)
	if err != nil {
		return response.OrderResponseDTO{}, &apperr.ValidationError{Fields: map[string]string{"order_date": "must be a date in YYYY-MM-DD format"}}
	}

	order, err := o.orderRepo.Update(ctx, id, postgres.Order{
		OrderDate:  orderDate,
		CustomerID: dto.CustomerID,
	})
	if err != nil {
		log.Printf("Error updating order %d: %v", id, err)
		return response.OrderResponseDTO{}, err
	}

	o.invalidate(ctx, id)

	items, err := o.orderRepo.ListItems(ctx, id)
	if err != nil {
		return response.OrderResponseDTO{}, err
	}
	return toOrderResponse(order, items), nil
}

func (o *orderUseCase) DeleteOrder(ctx context.Context, id uint) error {
	if err := o.orderRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting order %d: %v", id, err)
		return err
	}

	o.invalidate(ctx, id)
	return nil
}

func (o *orderUseCase) ListItems(ctx context.Context, orderID uint) ([]response.OrderItemResponseDTO, error) {
	if _, err := o.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	items, err := o.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (o *orderUseCase) AddItems(ctx context.Context, orderID uint, dto request.AddItemsDTO) ([]response.OrderItemResponseDTO, error) {
	items := toOrderItems(dto.Items)
	if err := o.orderRepo.AddItems(ctx, orderID, items); err != nil {
		log.Printf("Error adding items to order %d: %v", orderID, err)
		return nil, err
	}

	o.invalidate(ctx, orderID)
	return toItemResponses(items), nil
}

func (o *orderUseCase) invalidate(ctx context.Context, id uint) {
	if err := o.cache.Invalidate(ctx, orderEntity, id); err != nil {
		log.Printf("Failed to invalidate cached order %d: %v", id, err)
	}
}

func toOrderItems(dtos []request.OrderItemDTO) []postgres.OrderItem {
	items := make([]postgres.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, postgres.OrderItem{
			ProductID: dto.ProductID,
			Quantity:  *dto.Quantity,
		})
	}
	return items
}

func toOrderResponse(order postgres.Order, items []postgres.OrderItem) response.OrderResponseDTO {
	result := response.OrderResponseDTO{
		ID:         order.ID,
		OrderDate:  postgres.FormatDate(order.OrderDate),
		CustomerID: order.CustomerID,
	}
	if len(items) > 0 {
		result.Items = toItemResponses(items)
	}
	return result
}

func toItemResponses(items []postgres.OrderItem) []response.OrderItemResponseDTO {
	result := make([]response.OrderItemResponseDTO, 0, len(items))
	for _, item := range items {
		result = append(result, response.OrderItemResponseDTO{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return result
}
