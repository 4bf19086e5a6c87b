package order

// PlaceOrderRequest is the checkout payload. PaymentMethod is free-form
// ("card" | "paypal" | "crypto" | ...); it is stored, not validated.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method" example:"card"`
}

// WithItems joins an order with its line items.
// swagger:model OrderWithItems
type WithItems struct {
	Order
	Items []Item `json:"items"`
}
