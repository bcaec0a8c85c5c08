package validation

// CreateOrderRequest is the payload for POST /api/orders: a draft plus the
// checkout contact fields. Company, fileLink and notes are optional and
// pass through unchanged.
type CreateOrderRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"required"`
	Company     *string  `json:"company"`
	VideoType   string   `json:"videoType" validate:"required"`
	VideoLength string   `json:"videoLength" validate:"required"`
	Features    []string `json:"features"`
	FileLink    *string  `json:"fileLink"`
	Notes       *string  `json:"notes"`
	TotalPrice  int64    `json:"totalPrice" validate:"min=0"`
}
