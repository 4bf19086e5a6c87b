package cart

import "time"

// Item is one pending purchase line. At most one per (user, game).
type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	GameID    string    `json:"game_id"`
	StoreName string    `json:"store_name"`
	// NUMERIC -> string
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// AddRequest is the add-to-cart payload.
// swagger:model AddCartItemRequest
type AddRequest struct {
	GameID    string `json:"game_id"    example:"1"`
	StoreName string `json:"store_name" example:"Steam"`
	Price     string `json:"price"      example:"59.99"`
}
