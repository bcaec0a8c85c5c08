package services

import (
	"time"

	"clipworks-service/internal/domain"
	"clipworks-service/internal/validation"
)

func validSubmission() validation.CreateOrderRequest {
	return validation.CreateOrderRequest{
		Name:        "Jess Carter",
		Email:       "jess@example.com",
		Phone:       "555-0101",
		VideoType:   "Commercial",
		VideoLength: "1-3 minutes",
		Features:    []string{"Color Grading"},
		TotalPrice:  1000,
	}
}

func storedOrder(id uint64) *domain.Order {
	return &domain.Order{
		ID:          id,
		Name:        "Jess Carter",
		Email:       "jess@example.com",
		Phone:       "555-0101",
		VideoType:   "Commercial",
		VideoLength: "1-3 minutes",
		Features:    []string{"Color Grading"},
		TotalPrice:  1000,
		CreatedAt:   time.Now(),
		OrderRef:    "CW-2026-ABC123",
	}
}
