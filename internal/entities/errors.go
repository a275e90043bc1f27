package entities

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidAddress  = errors.New("invalid shipping address")

	ErrProductUnavailable = errors.New("product unavailable")
	ErrShopUnavailable    = errors.New("shop unavailable")
	ErrVariantUnavailable = errors.New("variant unavailable")

	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrIllegalTransition     = errors.New("illegal status transition")

	// ErrOrderNumberTaken signals a generated order number collided with an
	// existing one; the placement transaction is retried with a fresh number.
	ErrOrderNumberTaken = errors.New("order number already taken")

	ErrPersistenceFailure = errors.New("persistence failure")
)

// AddressError names the missing shipping address field.
type AddressError struct {
	Field string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid shipping address: missing %s", e.Field)
}

func (e *AddressError) Unwrap() error { return ErrInvalidAddress }

// InventoryError carries the requested vs available quantities so the caller
// can render the conflict without a second lookup.
type InventoryError struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Requested int
	Available int
}

func (e *InventoryError) Error() string {
	if e.VariantID != nil {
		return fmt.Sprintf("insufficient inventory for variant %s of product %s: requested %d, available %d",
			e.VariantID, e.ProductID, e.Requested, e.Available)
	}
	return fmt.Sprintf("insufficient inventory for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InventoryError) Unwrap() error { return ErrInsufficientInventory }

// TransitionError reports a rejected status transition with both endpoints.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }
