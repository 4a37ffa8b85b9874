package dto

import "helioskin-backend/models"

type OrderItemDTO struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name"       binding:"required"`
	Slug      string  `json:"slug"       binding:"required"`
	Qty       int     `json:"qty"        binding:"required,min=1"`
	Price     float64 `json:"price"      binding:"gte=0"`
}

type CreateOrderDTO struct {
	Items         []OrderItemDTO `json:"items"          binding:"required,dive"`
	CustomerName  string         `json:"customer_name"  binding:"required"`
	CustomerEmail string         `json:"customer_email" binding:"required"`
	AddressLine   string         `json:"address_line"   binding:"required"`
	City          string         `json:"city"           binding:"required"`
	PostalCode    string         `json:"postal_code"    binding:"required"`
	Country       string         `json:"country"        binding:"required"`
	Total         float64        `json:"total"          binding:"gte=0"`
	Status        string         `json:"status"`
}

// ToOrder maps the request body into the stored order shape, defaulting the
// status when the client left it out.
func (d CreateOrderDTO) ToOrder() models.Order {
	items := make([]models.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Slug:      it.Slug,
			Qty:       it.Qty,
			Price:     it.Price,
		})
	}

	status := d.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	return models.Order{
		Items:         items,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		AddressLine:   d.AddressLine,
		City:          d.City,
		PostalCode:    d.PostalCode,
		Country:       d.Country,
		Total:         d.Total,
		Status:        status,
	}
}

// OrderReceipt acknowledges a persisted order.
type OrderReceipt struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
