package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"clipworks-service/internal/domain"
	"clipworks-service/internal/repository"
)

// Store keeps orders and users in process memory. Id assignment and
// inserts share one mutex so concurrent submissions get distinct,
// monotonically increasing ids.
type Store struct {
	mu sync.Mutex

	orders      map[uint64]domain.Order
	users       map[uint64]domain.User
	nextOrderID uint64
	nextUserID  uint64

	nowFunc func() time.Time
}

var _ repository.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		orders:      make(map[uint64]domain.Order),
		users:       make(map[uint64]domain.User),
		nextOrderID: 1,
		nextUserID:  1,
		nowFunc:     time.Now,
	}
}

func (s *Store) CreateOrder(_ context.Context, in domain.InsertOrder) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	order := domain.Order{
		ID:          s.nextOrderID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		VideoType:   in.VideoType,
		VideoLength: in.VideoLength,
		Features:    copyFeatures(in.Features),
		FileLink:    in.FileLink,
		Notes:       in.Notes,
		TotalPrice:  in.TotalPrice,
		CreatedAt:   now,
		OrderRef:    domain.NewOrderRef(now),
	}
	s.nextOrderID++
	s.orders[order.ID] = order

	out := order
	out.Features = copyFeatures(order.Features)
	return &out, nil
}

// GetOrders returns all orders newest first.
func (s *Store) GetOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		o.Features = copyFeatures(o.Features)
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetOrder(_ context.Context, id uint64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	o.Features = copyFeatures(o.Features)
	return &o, nil
}

func (s *Store) CreateUser(_ context.Context, in domain.InsertUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username {
			return nil, fmt.Errorf("username %q already exists", in.Username)
		}
	}

	user := domain.User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) GetUser(_ context.Context, id uint64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// copyFeatures copies a features slice, normalizing nil to an empty list.
// Used on the way in so stored records always carry a concrete array, and
// on the way out so callers cannot mutate a stored record through the
// returned slice.
func copyFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	return append(out, features...)
}
