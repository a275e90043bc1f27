package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vendora/order-service/internal/entities"
	"github.com/vendora/order-service/pkg/trm"
	"github.com/vendora/order-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogRepo interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (entities.Product, error)
	GetVariant(ctx context.Context, productID, variantID uuid.UUID) (entities.Variant, error)

	// Счётчики инвентаря меняются только через эти две операции
	ReserveInventory(ctx context.Context, target entities.InventoryTarget, quantity int) error
	RestoreInventory(ctx context.Context, target entities.InventoryTarget, quantity int) error
}

type OrderRepo interface {
	SaveOrder(ctx context.Context, order entities.Order) error
	SaveOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error

	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]entities.Order, error)

	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to entities.OrderStatus, shippedAt, deliveredAt *time.Time) (bool, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

// Notifier is best-effort: implementations must not block and must swallow
// their own failures.
type Notifier interface {
	OrderCreated(ctx context.Context, order entities.Order)
	OrderStatusChanged(ctx context.Context, order entities.Order, previous entities.OrderStatus)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	catalog   CatalogRepo
	cache     Cache
	notifier  Notifier
	currency  string
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	catalog CatalogRepo,
	cache Cache,
	notifier Notifier,
	currency string,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		catalog:   catalog,
		cache:     cache,
		notifier:  notifier,
		currency:  currency,
	}
}

const (
	orderNumberAttempts = 3
	maxListLimit        = 100
	defaultListLimit    = 20
)

var hundred = decimal.NewFromInt(100)

type shopAccumulator struct {
	subtotal decimal.Decimal
	rate     decimal.Decimal
}

// PlaceOrder validates the cart, computes totals and per-shop commission,
// reserves inventory and persists the order with its items as one atomic
// unit. On any failure nothing is persisted.
func (s *orderService) PlaceOrder(
	ctx context.Context,
	customerID uuid.UUID,
	cart []entities.CartLine,
	shipping entities.Address,
	notes string,
) (entities.Order, error) {
	if len(cart) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}
	for _, line := range cart {
		if line.Quantity <= 0 {
			return entities.Order{}, fmt.Errorf("product %s: %w", line.ProductID, entities.ErrInvalidQuantity)
		}
	}
	if err := shipping.Validate(); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	var err error
	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		order, err = s.placeOnce(ctx, customerID, cart, shipping, notes)
		if errors.Is(err, entities.ErrOrderNumberTaken) {
			// коллизия номера заказа, пробуем с новым номером
			s.logger.WarnContext(ctx, "order number collision", slog.Int("attempt", attempt))
			continue
		}
		break
	}
	if err != nil {
		return entities.Order{}, classifyErr(err)
	}

	s.cacheOrder(order)
	s.notifier.OrderCreated(context.WithoutCancel(ctx), order)

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.TotalAmount.String()),
	)
	return order, nil
}

func (s *orderService) placeOnce(
	ctx context.Context,
	customerID uuid.UUID,
	cart []entities.CartLine,
	shipping entities.Address,
	notes string,
) (entities.Order, error) {
	now := time.Now().UTC()
	order := entities.Order{
		ID:          uuid.New(),
		OrderNumber: generateOrderNumber(now),
		CustomerID:  customerID,
		Status:      entities.StatusPending,
		Currency:    s.currency,

		// налоги и доставка считаются внешней политикой, здесь всегда ноль
		TaxAmount:      decimal.Zero,
		ShippingAmount: decimal.Zero,

		Shipping:  shipping,
		Notes:     notes,
		CreatedAt: now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		subtotal := decimal.Zero
		shopTotals := make(map[uuid.UUID]*shopAccumulator)
		items := make([]entities.OrderItem, 0, len(cart))

		for _, line := range cart {
			product, err := s.catalog.GetProduct(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if !product.Active {
				return fmt.Errorf("product %s: %w", product.ID, entities.ErrProductUnavailable)
			}
			if product.Shop.Status != entities.ShopStatusApproved {
				return fmt.Errorf("shop %s: %w", product.ShopID, entities.ErrShopUnavailable)
			}

			title, sku, price := product.Title, product.SKU, product.Price
			track, available := product.TrackInventory, product.InventoryQuantity

			if line.VariantID != nil {
				variant, err := s.catalog.GetVariant(ctx, line.ProductID, *line.VariantID)
				if err != nil {
					return err
				}
				if !variant.Active {
					return fmt.Errorf("variant %s: %w", variant.ID, entities.ErrVariantUnavailable)
				}
				if variant.Title != "" {
					title = product.Title + " / " + variant.Title
				}
				if variant.SKU != "" {
					sku = variant.SKU
				}
				if variant.Price.Valid {
					price = variant.Price.Decimal
				}
				track, available = variant.TrackInventory, variant.InventoryQuantity
			}

			if track && available < line.Quantity {
				return &entities.InventoryError{
					ProductID: line.ProductID,
					VariantID: line.VariantID,
					Requested: line.Quantity,
					Available: available,
				}
			}

			lineTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			items = append(items, entities.OrderItem{
				ID:        uuid.New(),
				ProductID: line.ProductID,
				VariantID: line.VariantID,
				ShopID:    product.ShopID,
				Title:     title,
				SKU:       sku,
				UnitPrice: price,
				Quantity:  line.Quantity,
				LineTotal: lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)

			acc, ok := shopTotals[product.ShopID]
			if !ok {
				acc = &shopAccumulator{subtotal: decimal.Zero, rate: product.Shop.CommissionRate}
				shopTotals[product.ShopID] = acc
			}
			acc.subtotal = acc.subtotal.Add(lineTotal)
		}

		// комиссия считается по ставке каждого магазина отдельно
		commission := decimal.Zero
		for _, acc := range shopTotals {
			commission = commission.Add(acc.subtotal.Mul(acc.rate).Div(hundred))
		}

		order.Subtotal = subtotal
		order.CommissionAmount = commission
		order.TotalAmount = subtotal.Add(order.TaxAmount).Add(order.ShippingAmount)
		order.Items = items

		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return err
		}
		if err := s.orders.SaveOrderItems(ctx, order.ID, items); err != nil {
			return err
		}

		// Само списание условное: БД отклонит второй конкурентный заказ,
		// если суммарное количество превышает остаток.
		for _, line := range cart {
			invTarget := entities.InventoryTarget{ProductID: line.ProductID, VariantID: line.VariantID}
			if err := s.catalog.ReserveInventory(ctx, invTarget, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// TransitionStatus applies one legal state machine step. Stamps shipped_at /
// delivered_at, and on pending → cancelled restores inventory in the same
// transaction.
func (s *orderService) TransitionStatus(ctx context.Context, orderID uuid.UUID, target entities.OrderStatus) (entities.Order, error) {
	if !target.Valid() {
		return entities.Order{}, fmt.Errorf("unknown order status %q", target)
	}

	var order entities.Order
	var previous entities.OrderStatus

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := entities.CheckTransition(order.Status, target); err != nil {
			return err
		}

		now := time.Now().UTC()
		var shippedAt, deliveredAt *time.Time
		switch target {
		case entities.StatusShipped:
			shippedAt = &now
		case entities.StatusDelivered:
			deliveredAt = &now
		}

		updated, err := s.orders.UpdateOrderStatus(ctx, orderID, order.Status, target, shippedAt, deliveredAt)
		if err != nil {
			return err
		}
		if !updated {
			// параллельный переход успел раньше
			current, err := s.orders.GetOrderByID(ctx, orderID)
			if err != nil {
				return err
			}
			return &entities.TransitionError{From: current.Status, To: target}
		}

		if target == entities.StatusCancelled {
			for _, item := range order.Items {
				invTarget := entities.InventoryTarget{ProductID: item.ProductID, VariantID: item.VariantID}
				if err := s.catalog.RestoreInventory(ctx, invTarget, item.Quantity); err != nil {
					return err
				}
			}
		}

		previous = order.Status
		order.Status = target
		if shippedAt != nil {
			order.ShippedAt = shippedAt
		}
		if deliveredAt != nil {
			order.DeliveredAt = deliveredAt
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, classifyErr(err)
	}

	s.cacheOrder(order)
	s.notifier.OrderStatusChanged(context.WithoutCancel(ctx), order, previous)

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_number", order.OrderNumber),
		slog.String("from", string(previous)),
		slog.String("to", string(target)),
	)
	return order, nil
}

// CancelOrder is the purchaser-side cancellation: allowed from pending only,
// always with inventory restoration.
func (s *orderService) CancelOrder(ctx context.Context, orderID, requestedBy uuid.UUID) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, classifyErr(err)
	}
	if order.CustomerID != requestedBy {
		// чужой заказ не раскрываем
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if order.Status != entities.StatusPending {
		return entities.Order{}, &entities.TransitionError{From: order.Status, To: entities.StatusCancelled}
	}

	return s.TransitionStatus(ctx, orderID, entities.StatusCancelled)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	key := orderID.String()
	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Any("error", err))
			s.cache.Remove(key)
		} else {
			return order, nil
		}
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, classifyErr(err)
	}

	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]entities.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	orders, err := s.orders.ListOrdersByCustomer(ctx, customerID, limit)
	if err != nil {
		return nil, classifyErr(err)
	}
	return orders, nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID.String(), data)
}

func generateOrderNumber(now time.Time) string {
	suffix := make([]byte, 3)
	rand.Read(suffix)
	return fmt.Sprintf("ORD-%s-%X", now.Format("20060102"), suffix)
}

var domainErrs = []error{
	entities.ErrOrderNotFound,
	entities.ErrEmptyCart,
	entities.ErrInvalidQuantity,
	entities.ErrInvalidAddress,
	entities.ErrProductUnavailable,
	entities.ErrShopUnavailable,
	entities.ErrVariantUnavailable,
	entities.ErrInsufficientInventory,
	entities.ErrIllegalTransition,
}

// classifyErr keeps domain errors as-is and folds everything else into
// ErrPersistenceFailure: the caller may retry such a request verbatim because
// no partial state survives a failed transaction.
func classifyErr(err error) error {
	if err == nil {
		return nil
	}
	for _, domain := range domainErrs {
		if errors.Is(err, domain) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", entities.ErrPersistenceFailure, err)
}
