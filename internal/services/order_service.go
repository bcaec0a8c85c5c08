package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"clipworks-service/internal/domain"
	rabbit "clipworks-service/internal/infra/rabbitmq"
	"clipworks-service/internal/repository"
	"clipworks-service/internal/validation"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
)

var ErrOrderNotFound = errors.New("order not found")

// ValidationError reports which submission fields failed and why. The
// store is never touched when validation fails, so the caller's draft
// stays intact for correction and resubmission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order submission: %d field(s) failed", len(e.Fields))
}

const (
	storeTimeout   = 5 * time.Second
	ordersCacheKey = "orders:recent"
	ordersCacheTTL = 10 * time.Second
)

// OrderService is the submission gateway: the single validation boundary
// between external input and the store.
type OrderService struct {
	store       repository.Store
	publisher   rabbit.PublisherInterface
	validate    *validatorv10.Validate
	redisClient *redis.Client
}

func NewOrderService(store repository.Store, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		store:     store,
		publisher: pub,
		validate:  validation.New(),
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// SubmitOrder validates the request and forwards it to the store. Two
// identical submissions create two distinct orders; there is no
// idempotency key in the payload.
func (s *OrderService) SubmitOrder(ctx context.Context, req validation.CreateOrderRequest) (*domain.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Fields: validation.ErrorsToFields(err)}
	}

	in := domain.InsertOrder{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		VideoType:   req.VideoType,
		VideoLength: req.VideoLength,
		Features:    req.Features,
		FileLink:    req.FileLink,
		Notes:       req.Notes,
		TotalPrice:  req.TotalPrice,
	}

	cctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	order, err := s.store.CreateOrder(cctx, in)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.invalidateOrdersCache()
	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

// GetOrders lists all submitted orders newest first, serving from redis
// when a recent copy exists.
func (s *OrderService) GetOrders(ctx context.Context) ([]domain.Order, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, ordersCacheKey).Result()
		if err == nil {
			var orders []domain.Order
			if err := json.Unmarshal([]byte(cached), &orders); err == nil {
				return orders, nil
			}
		}
	}

	cctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	orders, err := s.store.GetOrders(cctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(orders); err == nil {
			s.redisClient.Set(ctx, ordersCacheKey, data, ordersCacheTTL)
		}
	}

	return orders, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	cctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	o, err := s.store.GetOrder(cctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) invalidateOrdersCache() {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(context.Background(), ordersCacheKey)
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	evt := domain.OrderCreatedEvent{
		OrderID:    order.ID,
		OrderRef:   order.OrderRef,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created for %d: %v", order.ID, err)
	}
}
