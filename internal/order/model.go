package order

import "time"

// Order is an immutable record of a completed checkout.
type Order struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	// NUMERIC -> string; fixed at creation as the sum of the item prices
	TotalAmount   string    `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// Item is a line-item snapshot. GameTitle and Price are copies taken at
// checkout time so order history survives later catalog changes.
type Item struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	GameID    string    `json:"game_id"`
	GameTitle string    `json:"game_title"`
	StoreName string    `json:"store_name"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusCompleted is the only order status the current flow produces.
const StatusCompleted = "completed"
