package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vendora/order-service/internal/entities"
	"github.com/vendora/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

const uniqueViolation = pq.ErrorCode("23505")

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetProduct(ctx context.Context, productID uuid.UUID) (entities.Product, error) {
	query, args := r.qb.Select(
		"p.id", "p.shop_id", "p.title", "p.sku", "p.price", "p.active",
		"p.track_inventory", "p.inventory_quantity", "p.sold_count",
		"s.owner_id AS shop_owner_id", "s.name AS shop_name",
		"s.status AS shop_status", "s.commission_rate AS shop_commission_rate").
		From("products p").
		Join("shops s ON s.id = p.shop_id").
		Where(sq.Eq{"p.id": productID}).
		Where("p.deleted_at IS NULL").
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, fmt.Errorf("product %s: %w", productID, entities.ErrProductUnavailable)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

func (r *postgresRepo) GetVariant(ctx context.Context, productID, variantID uuid.UUID) (entities.Variant, error) {
	query, args := r.qb.Select(
		"id", "product_id", "title", "sku", "price", "active",
		"track_inventory", "inventory_quantity", "sold_count").
		From("variants").
		Where(sq.Eq{"id": variantID, "product_id": productID}).
		Where("deleted_at IS NULL").
		MustSql()

	var variant Variant
	err := r.getContext(ctx, &variant, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Variant{}, fmt.Errorf("variant %s of product %s: %w",
			variantID, productID, entities.ErrVariantUnavailable)
	}
	if err != nil {
		return entities.Variant{}, fmt.Errorf("failed to get variant: %w", err)
	}

	return VariantToEntity(variant), nil
}

// ReserveInventory subtracts quantity from the target row's counter and bumps
// sold_count in a single conditional UPDATE. The floor check in the WHERE
// clause is what serializes concurrent writers: a decrement that would drive
// the counter negative matches no row and the reservation fails.
func (r *postgresRepo) ReserveInventory(ctx context.Context, target entities.InventoryTarget, quantity int) error {
	table, id := inventoryRow(target)

	query, args := r.qb.Update(table).
		Set("inventory_quantity", sq.Expr(
			"CASE WHEN track_inventory THEN inventory_quantity - ? ELSE inventory_quantity END", quantity)).
		Set("sold_count", sq.Expr("sold_count + ?", quantity)).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("(NOT track_inventory OR inventory_quantity >= ?)", quantity)).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve inventory: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve inventory: %w", err)
	}
	if affected == 0 {
		available, err := r.availableQuantity(ctx, table, id)
		if err != nil {
			return err
		}
		return &entities.InventoryError{
			ProductID: target.ProductID,
			VariantID: target.VariantID,
			Requested: quantity,
			Available: available,
		}
	}

	return nil
}

// RestoreInventory is the compensating write for a cancellation: it adds the
// quantity back and subtracts it from sold_count on the same row.
func (r *postgresRepo) RestoreInventory(ctx context.Context, target entities.InventoryTarget, quantity int) error {
	table, id := inventoryRow(target)

	query, args := r.qb.Update(table).
		Set("inventory_quantity", sq.Expr(
			"CASE WHEN track_inventory THEN inventory_quantity + ? ELSE inventory_quantity END", quantity)).
		Set("sold_count", sq.Expr("sold_count - ?", quantity)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore inventory: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to restore inventory: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", target.ProductID, entities.ErrProductUnavailable)
	}

	return nil
}

func inventoryRow(target entities.InventoryTarget) (table string, id uuid.UUID) {
	if target.VariantID != nil {
		return "variants", *target.VariantID
	}
	return "products", target.ProductID
}

func (r *postgresRepo) availableQuantity(ctx context.Context, table string, id uuid.UUID) (int, error) {
	query, args := r.qb.Select("inventory_quantity").
		From(table).
		Where(sq.Eq{"id": id}).
		MustSql()

	var available int
	err := r.getContext(ctx, &available, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s row %s: %w", table, id, entities.ErrProductUnavailable)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read available quantity: %w", err)
	}
	return available, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "order_number", "customer_id", "status", "currency",
			"subtotal", "tax_amount", "shipping_amount", "total_amount", "commission_amount",
			"shipping_name", "shipping_phone", "shipping_country",
			"shipping_city", "shipping_street", "shipping_postal_code",
			"notes", "created_at",
		).
		Values(
			o.ID, o.OrderNumber, o.CustomerID, string(o.Status), o.Currency,
			o.Subtotal, o.TaxAmount, o.ShippingAmount, o.TotalAmount, o.CommissionAmount,
			o.Shipping.Name, o.Shipping.Phone, o.Shipping.Country,
			o.Shipping.City, o.Shipping.Street, o.Shipping.PostalCode,
			nullString(o.Notes), o.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err, "orders_order_number_key") {
		return fmt.Errorf("order number %s: %w", o.OrderNumber, entities.ErrOrderNumberTaken)
	}
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("id", "order_id", "position", "product_id", "variant_id",
			"shop_id", "title", "sku", "unit_price", "quantity", "line_total")

	// position preserves the cart order for display
	for i, it := range items {
		q = q.Values(
			it.ID,
			orderID,
			i,
			it.ProductID,
			nullUUID(it.VariantID),
			it.ShopID,
			it.Title,
			nullString(it.SKU),
			it.UnitPrice,
			it.Quantity,
			it.LineTotal,
		)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := lo.Map(orders, func(o Order, _ int) uuid.UUID { return o.ID })

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsByOrder := lo.GroupBy(items, func(it OrderItem) uuid.UUID { return it.OrderID })

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsByOrder[order.ID]))
	}

	return result, nil
}

// UpdateOrderStatus writes the target status only when the row still carries
// the expected source status. A false return means a concurrent transition
// won the race.
func (r *postgresRepo) UpdateOrderStatus(
	ctx context.Context,
	orderID uuid.UUID,
	from, to entities.OrderStatus,
	shippedAt, deliveredAt *time.Time,
) (bool, error) {
	q := r.qb.Update("orders").Set("status", string(to))

	if shippedAt != nil {
		q = q.Set("shipped_at", nullTime(shippedAt))
	}
	if deliveredAt != nil {
		q = q.Set("delivered_at", nullTime(deliveredAt))
	}

	query, args := q.Where(sq.Eq{"id": orderID, "status": string(from)}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return affected > 0, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	return items, nil
}

var orderColumns = []string{
	"id", "order_number", "customer_id", "status", "currency",
	"subtotal", "tax_amount", "shipping_amount", "total_amount", "commission_amount",
	"shipping_name", "shipping_phone", "shipping_country",
	"shipping_city", "shipping_street", "shipping_postal_code",
	"notes", "created_at", "shipped_at", "delivered_at",
}

var itemColumns = []string{
	"id", "order_id", "position", "product_id", "variant_id",
	"shop_id", "title", "sku", "unit_price", "quantity", "line_total",
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == constraint
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
