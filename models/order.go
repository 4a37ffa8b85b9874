package models

// Order statuses. Orders are stored "pending" and acknowledged "received";
// no further transitions exist in this backend.
const (
	OrderStatusPending  = "pending"
	OrderStatusReceived = "received"
)

// OrderItem is an order-time snapshot of a product line, not a live reference.
// Price and name stay as captured even if the catalog changes later.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Slug      string  `bson:"slug" json:"slug"`
	Qty       int     `bson:"qty" json:"qty"`
	Price     float64 `bson:"price" json:"price"`
}

// Order is a customer purchase record.
type Order struct {
	Items         []OrderItem `bson:"items" json:"items"`
	CustomerName  string      `bson:"customer_name" json:"customer_name"`
	CustomerEmail string      `bson:"customer_email" json:"customer_email"`
	AddressLine   string      `bson:"address_line" json:"address_line"`
	City          string      `bson:"city" json:"city"`
	PostalCode    string      `bson:"postal_code" json:"postal_code"`
	Country       string      `bson:"country" json:"country"`
	Total         float64     `bson:"total" json:"total"`
	Status        string      `bson:"status" json:"status"`
}
