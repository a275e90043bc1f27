package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Address is the structured shipping address embedded in an order.
type Address struct {
	Name       string
	Phone      string
	Country    string
	City       string
	Street     string
	PostalCode string
}

// Validate reports the first missing required field as an AddressError.
func (a Address) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"phone", a.Phone},
		{"country", a.Country},
		{"city", a.City},
		{"street", a.Street},
		{"postal_code", a.PostalCode},
	}
	for _, f := range fields {
		if f.value == "" {
			return &AddressError{Field: f.name}
		}
	}
	return nil
}

// CartLine is one requested purchase: a product, an optional variant and a quantity.
type CartLine struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
}

// OrderItem snapshots a product/variant at time of purchase. Snapshot fields
// never change after creation, independent of later catalog edits.
type OrderItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	VariantID *uuid.UUID
	ShopID    uuid.UUID
	Title     string
	SKU       string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type Order struct {
	ID          uuid.UUID
	OrderNumber string
	CustomerID  uuid.UUID
	Status      OrderStatus
	Currency    string

	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	ShippingAmount   decimal.Decimal
	TotalAmount      decimal.Decimal
	CommissionAmount decimal.Decimal

	Shipping Address
	Notes    string

	// Items keep the order of the original cart.
	Items []OrderItem

	CreatedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Address{})
}
