package domain

import "time"

// Order is a submitted quote request, immutable once created. Optional
// fields are pointers so absent values serialize as explicit JSON null
// and SQL NULL rather than being dropped.
type Order struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null"`
	Phone       string    `json:"phone" gorm:"not null"`
	Company     *string   `json:"company"`
	VideoType   string    `json:"videoType" gorm:"not null"`
	VideoLength string    `json:"videoLength" gorm:"not null"`
	Features    []string  `json:"features" gorm:"serializer:json;not null"`
	FileLink    *string   `json:"fileLink"`
	Notes       *string   `json:"notes"`
	TotalPrice  int64     `json:"totalPrice" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null;index"`
	OrderRef    string    `json:"orderRef" gorm:"not null"`
}

// InsertOrder is the validated payload handed to a store; the store
// assigns id, createdAt and orderRef.
type InsertOrder struct {
	Name        string
	Email       string
	Phone       string
	Company     *string
	VideoType   string
	VideoLength string
	Features    []string
	FileLink    *string
	Notes       *string
	TotalPrice  int64
}
