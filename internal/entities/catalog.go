package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShopStatus string

const (
	ShopStatusPending   ShopStatus = "pending"
	ShopStatusApproved  ShopStatus = "approved"
	ShopStatusRejected  ShopStatus = "rejected"
	ShopStatusSuspended ShopStatus = "suspended"
)

// Shop holds the fulfillment data the ordering path needs: only approved
// shops may fulfill orders, and the commission rate is a percentage of the
// shop's subtotal retained by the platform.
type Shop struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	CommissionRate decimal.Decimal
	Status         ShopStatus
}

type Product struct {
	ID                uuid.UUID
	ShopID            uuid.UUID
	Title             string
	SKU               string
	Price             decimal.Decimal
	Active            bool
	TrackInventory    bool
	InventoryQuantity int
	SoldCount         int

	Shop Shop
}

// Variant is a purchasable configuration of a product. Price and SKU
// override the product's when set.
type Variant struct {
	ID                uuid.UUID
	ProductID         uuid.UUID
	Title             string
	SKU               string
	Price             decimal.NullDecimal
	Active            bool
	TrackInventory    bool
	InventoryQuantity int
	SoldCount         int
}

// InventoryTarget names the row whose counters a reservation or a
// compensation mutates: the variant's when present, else the product's.
type InventoryTarget struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
}
