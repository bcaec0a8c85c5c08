package mysql

import (
	"context"
	"errors"
	"log"
	"time"

	"clipworks-service/internal/domain"
	"clipworks-service/internal/repository"

	"gorm.io/gorm"
)

type store struct {
	db *gorm.DB
}

// NewStore wraps a gorm connection as the durable order/user store. Id
// assignment and username uniqueness are delegated to the database.
func NewStore(db *gorm.DB) repository.Store {
	return &store{db: db}
}

func (s *store) CreateOrder(ctx context.Context, in domain.InsertOrder) (*domain.Order, error) {
	now := time.Now()
	order := &domain.Order{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		VideoType:   in.VideoType,
		VideoLength: in.VideoLength,
		Features:    normalizeFeatures(in.Features),
		FileLink:    in.FileLink,
		Notes:       in.Notes,
		TotalPrice:  in.TotalPrice,
		CreatedAt:   now,
		OrderRef:    domain.NewOrderRef(now),
	}

	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		log.Printf("order create error: %v", err)
		return nil, err
	}
	if order.ID == 0 {
		return nil, errors.New("order saved but no id assigned")
	}
	return order, nil
}

// GetOrders returns all orders newest first, matching the in-memory
// backend's contract.
func (s *store) GetOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		log.Printf("orders list error: %v", err)
		return nil, err
	}
	return out, nil
}

func (s *store) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := s.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order lookup error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (s *store) CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	user := &domain.User{
		Username: in.Username,
		Password: in.Password,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		log.Printf("user create error: %v", err)
		return nil, err
	}
	return user, nil
}

func (s *store) GetUser(ctx context.Context, id uint64) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func normalizeFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	return append(out, features...)
}
