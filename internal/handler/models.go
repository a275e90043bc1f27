package handler

import (
	"time"

	"github.com/vendora/order-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest тело запроса на создание заказа
type PlaceOrderRequest struct {
	Items           []CartItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress AddressRequest    `json:"shipping_address" validate:"required"`
	Notes           string            `json:"notes,omitempty" validate:"max=2000"`
}

type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	VariantID string `json:"variant_id,omitempty" validate:"omitempty,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type AddressRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Country    string `json:"country" validate:"required"`
	City       string `json:"city" validate:"required"`
	Street     string `json:"street" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// Order представляет заказ в ответе API
type Order struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	Currency    string `json:"currency"`

	Subtotal         decimal.Decimal `json:"subtotal"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	ShippingAmount   decimal.Decimal `json:"shipping_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`

	ShippingAddress Address `json:"shipping_address"`
	Notes           string  `json:"notes,omitempty"`

	Items []OrderItem `json:"items"`

	CreatedAt   time.Time  `json:"created_at"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type Address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	ShopID    string          `json:"shop_id"`
	Title     string          `json:"title"`
	SKU       string          `json:"sku,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func (r PlaceOrderRequest) Cart() ([]entities.CartLine, error) {
	cart := make([]entities.CartLine, 0, len(r.Items))
	for _, item := range r.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, err
		}

		line := entities.CartLine{ProductID: productID, Quantity: item.Quantity}
		if item.VariantID != "" {
			variantID, err := uuid.Parse(item.VariantID)
			if err != nil {
				return nil, err
			}
			line.VariantID = &variantID
		}
		cart = append(cart, line)
	}
	return cart, nil
}

func AddressJSONToEntity(a AddressRequest) entities.Address {
	return entities.Address{
		Name:       a.Name,
		Phone:      a.Phone,
		Country:    a.Country,
		City:       a.City,
		Street:     a.Street,
		PostalCode: a.PostalCode,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Name:       a.Name,
		Phone:      a.Phone,
		Country:    a.Country,
		City:       a.City,
		Street:     a.Street,
		PostalCode: a.PostalCode,
	}
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	item := OrderItem{
		ProductID: i.ProductID.String(),
		ShopID:    i.ShopID.String(),
		Title:     i.Title,
		SKU:       i.SKU,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
		LineTotal: i.LineTotal,
	}
	if i.VariantID != nil {
		item.VariantID = i.VariantID.String()
	}
	return item
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID.String(),
		Status:      string(o.Status),
		Currency:    o.Currency,

		Subtotal:         o.Subtotal,
		TaxAmount:        o.TaxAmount,
		ShippingAmount:   o.ShippingAmount,
		TotalAmount:      o.TotalAmount,
		CommissionAmount: o.CommissionAmount,

		ShippingAddress: AddressEntityToJSON(o.Shipping),
		Notes:           o.Notes,
		Items:           items,

		CreatedAt:   o.CreatedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
	}
}
