package models

// Order is a purchase record tied to a client's email. OrderID is a global
// sequential identifier, not scoped per client.
type Order struct {
	OrderID int64   `bson:"order_id" json:"order_id"`
	Email   string  `bson:"email" json:"email"`
	Status  string  `bson:"status" json:"status"`
	Total   float64 `bson:"total" json:"total"`
}

const (
	StatusProcessing = "processing"
)
