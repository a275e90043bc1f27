package repo

import (
	"database/sql"
	"time"

	"github.com/vendora/order-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uuid.UUID `db:"id"`
	OrderNumber string    `db:"order_number"`
	CustomerID  uuid.UUID `db:"customer_id"`
	Status      string    `db:"status"`
	Currency    string    `db:"currency"`

	Subtotal         decimal.Decimal `db:"subtotal"`
	TaxAmount        decimal.Decimal `db:"tax_amount"`
	ShippingAmount   decimal.Decimal `db:"shipping_amount"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`

	ShippingName       string `db:"shipping_name"`
	ShippingPhone      string `db:"shipping_phone"`
	ShippingCountry    string `db:"shipping_country"`
	ShippingCity       string `db:"shipping_city"`
	ShippingStreet     string `db:"shipping_street"`
	ShippingPostalCode string `db:"shipping_postal_code"`

	Notes sql.NullString `db:"notes"`

	CreatedAt   time.Time    `db:"created_at"`
	ShippedAt   sql.NullTime `db:"shipped_at"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
}

type OrderItem struct {
	ID        uuid.UUID       `db:"id"`
	OrderID   uuid.UUID       `db:"order_id"`
	Position  int             `db:"position"`
	ProductID uuid.UUID       `db:"product_id"`
	VariantID uuid.NullUUID   `db:"variant_id"`
	ShopID    uuid.UUID       `db:"shop_id"`
	Title     string          `db:"title"`
	SKU       sql.NullString  `db:"sku"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Quantity  int             `db:"quantity"`
	LineTotal decimal.Decimal `db:"line_total"`
}

// Product is a product row joined with its owning shop.
type Product struct {
	ID                uuid.UUID       `db:"id"`
	ShopID            uuid.UUID       `db:"shop_id"`
	Title             string          `db:"title"`
	SKU               sql.NullString  `db:"sku"`
	Price             decimal.Decimal `db:"price"`
	Active            bool            `db:"active"`
	TrackInventory    bool            `db:"track_inventory"`
	InventoryQuantity int             `db:"inventory_quantity"`
	SoldCount         int             `db:"sold_count"`

	ShopOwnerID        uuid.UUID           `db:"shop_owner_id"`
	ShopName           string              `db:"shop_name"`
	ShopStatus         string              `db:"shop_status"`
	ShopCommissionRate decimal.NullDecimal `db:"shop_commission_rate"`
}

type Variant struct {
	ID                uuid.UUID           `db:"id"`
	ProductID         uuid.UUID           `db:"product_id"`
	Title             sql.NullString      `db:"title"`
	SKU               sql.NullString      `db:"sku"`
	Price             decimal.NullDecimal `db:"price"`
	Active            bool                `db:"active"`
	TrackInventory    bool                `db:"track_inventory"`
	InventoryQuantity int                 `db:"inventory_quantity"`
	SoldCount         int                 `db:"sold_count"`
}

// defaultCommissionRate applies when a shop has no explicit rate.
var defaultCommissionRate = decimal.NewFromInt(10)

func ProductToEntity(p Product) entities.Product {
	rate := defaultCommissionRate
	if p.ShopCommissionRate.Valid {
		rate = p.ShopCommissionRate.Decimal
	}

	return entities.Product{
		ID:                p.ID,
		ShopID:            p.ShopID,
		Title:             p.Title,
		SKU:               nullStringToString(p.SKU),
		Price:             p.Price,
		Active:            p.Active,
		TrackInventory:    p.TrackInventory,
		InventoryQuantity: p.InventoryQuantity,
		SoldCount:         p.SoldCount,
		Shop: entities.Shop{
			ID:             p.ShopID,
			OwnerID:        p.ShopOwnerID,
			Name:           p.ShopName,
			CommissionRate: rate,
			Status:         entities.ShopStatus(p.ShopStatus),
		},
	}
}

func VariantToEntity(v Variant) entities.Variant {
	return entities.Variant{
		ID:                v.ID,
		ProductID:         v.ProductID,
		Title:             nullStringToString(v.Title),
		SKU:               nullStringToString(v.SKU),
		Price:             v.Price,
		Active:            v.Active,
		TrackInventory:    v.TrackInventory,
		InventoryQuantity: v.InventoryQuantity,
		SoldCount:         v.SoldCount,
	}
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		VariantID: nullUUIDToPtr(i.VariantID),
		ShopID:    i.ShopID,
		Title:     i.Title,
		SKU:       nullStringToString(i.SKU),
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
		LineTotal: i.LineTotal,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		Status:      entities.OrderStatus(o.Status),
		Currency:    o.Currency,

		Subtotal:         o.Subtotal,
		TaxAmount:        o.TaxAmount,
		ShippingAmount:   o.ShippingAmount,
		TotalAmount:      o.TotalAmount,
		CommissionAmount: o.CommissionAmount,

		Shipping: entities.Address{
			Name:       o.ShippingName,
			Phone:      o.ShippingPhone,
			Country:    o.ShippingCountry,
			City:       o.ShippingCity,
			Street:     o.ShippingStreet,
			PostalCode: o.ShippingPostalCode,
		},
		Notes: nullStringToString(o.Notes),

		CreatedAt:   o.CreatedAt,
		ShippedAt:   nullTimeToPtr(o.ShippedAt),
		DeliveredAt: nullTimeToPtr(o.DeliveredAt),
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullUUIDToPtr(nu uuid.NullUUID) *uuid.UUID {
	if nu.Valid {
		id := nu.UUID
		return &id
	}
	return nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
