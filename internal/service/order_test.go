package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/vendora/order-service/internal/entities"
	"github.com/vendora/order-service/internal/service"
	mocks "github.com/vendora/order-service/internal/service/mocks"
	txMocks "github.com/vendora/order-service/pkg/trm/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderService interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, cart []entities.CartLine, shipping entities.Address, notes string) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]entities.Order, error)
	TransitionStatus(ctx context.Context, orderID uuid.UUID, target entities.OrderStatus) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, requestedBy uuid.UUID) (entities.Order, error)
}

func newTestService(
	orders *mocks.MockOrderRepo,
	catalog *mocks.MockCatalogRepo,
	cache *mocks.MockCache,
	notifier *mocks.MockNotifier,
	tx *txMocks.MockManager,
) orderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, tx, orders, catalog, cache, notifier, "USD")
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func validAddress() entities.Address {
	return entities.Address{
		Name:       "Ivan Petrov",
		Phone:      "+79990001122",
		Country:    "RU",
		City:       "Moscow",
		Street:     "Tverskaya 1",
		PostalCode: "125009",
	}
}

func approvedProduct(shopID uuid.UUID, price int64, rate int64, qty int) entities.Product {
	return entities.Product{
		ID:                uuid.New(),
		ShopID:            shopID,
		Title:             "product",
		SKU:               "SKU-1",
		Price:             decimal.NewFromInt(price),
		Active:            true,
		TrackInventory:    true,
		InventoryQuantity: qty,
		Shop: entities.Shop{
			ID:             shopID,
			Name:           "shop",
			CommissionRate: decimal.NewFromInt(rate),
			Status:         entities.ShopStatusApproved,
		},
	}
}

func TestOrderService_PlaceOrder_Totals(t *testing.T) {
	customerID := uuid.New()

	shopA := uuid.New()
	shopB := uuid.New()

	// ставка 10% у первого магазина, 5% у второго
	productA := approvedProduct(shopA, 500, 10, 10)
	productA.Title = "keyboard"
	productB := approvedProduct(shopB, 1000, 5, 10)
	productB.Title = "monitor"

	cart := []entities.CartLine{
		{ProductID: productA.ID, Quantity: 2},
		{ProductID: productB.ID, Quantity: 1},
	}

	orders := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	passthroughTx(tx)

	catalog.EXPECT().GetProduct(mock.Anything, productA.ID).Return(productA, nil)
	catalog.EXPECT().GetProduct(mock.Anything, productB.ID).Return(productB, nil)

	var saved entities.Order
	orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, order entities.Order) {
			saved = order
		}).Return(nil)
	orders.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	catalog.EXPECT().
		ReserveInventory(mock.Anything, entities.InventoryTarget{ProductID: productA.ID}, 2).
		Return(nil)
	catalog.EXPECT().
		ReserveInventory(mock.Anything, entities.InventoryTarget{ProductID: productB.ID}, 1).
		Return(nil)

	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
	notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return()

	svc := newTestService(orders, catalog, cache, notifier, tx)

	order, err := svc.PlaceOrder(context.Background(), customerID, cart, validAddress(), "")
	require.NoError(t, err)

	assert.Equal(t, saved.ID, order.ID)
	assert.Equal(t, entities.StatusPending, order.Status)
	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, "USD", order.Currency)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	assert.Equal(t, "2000", order.Subtotal.String())
	// 1000*10% + 1000*5%
	assert.Equal(t, "150", order.CommissionAmount.String())
	assert.Equal(t, "2000", order.TotalAmount.String())
	assert.True(t, order.TaxAmount.IsZero())
	assert.True(t, order.ShippingAmount.IsZero())

	// позиции сохраняют порядок корзины
	require.Len(t, order.Items, 2)
	assert.Equal(t, "keyboard", order.Items[0].Title)
	assert.Equal(t, "1000", order.Items[0].LineTotal.String())
	assert.Equal(t, "monitor", order.Items[1].Title)
	assert.Equal(t, "1000", order.Items[1].LineTotal.String())
}

func TestOrderService_PlaceOrder_VariantOverrides(t *testing.T) {
	customerID := uuid.New()
	shopID := uuid.New()

	product := approvedProduct(shopID, 500, 10, 0)
	product.Title = "t-shirt"
	variant := entities.Variant{
		ID:                uuid.New(),
		ProductID:         product.ID,
		Title:             "XL",
		SKU:               "SKU-XL",
		Price:             decimal.NewNullDecimal(decimal.NewFromInt(550)),
		Active:            true,
		TrackInventory:    true,
		InventoryQuantity: 5,
	}
	variantID := variant.ID

	cart := []entities.CartLine{{ProductID: product.ID, VariantID: &variantID, Quantity: 2}}

	orders := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	passthroughTx(tx)

	catalog.EXPECT().GetProduct(mock.Anything, product.ID).Return(product, nil)
	catalog.EXPECT().GetVariant(mock.Anything, product.ID, variantID).Return(variant, nil)
	orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
	orders.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	catalog.EXPECT().
		ReserveInventory(mock.Anything, entities.InventoryTarget{ProductID: product.ID, VariantID: &variantID}, 2).
		Return(nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
	notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return()

	svc := newTestService(orders, catalog, cache, notifier, tx)

	order, err := svc.PlaceOrder(context.Background(), customerID, cart, validAddress(), "")
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, "t-shirt / XL", item.Title)
	assert.Equal(t, "SKU-XL", item.SKU)
	assert.Equal(t, "550", item.UnitPrice.String())
	assert.Equal(t, "1100", item.LineTotal.String())
	assert.Equal(t, "1100", order.Subtotal.String())
	assert.Equal(t, "110", order.CommissionAmount.String())
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo)

	customerID := uuid.New()
	productID := uuid.New()
	shopID := uuid.New()
	cart := []entities.CartLine{{ProductID: productID, Quantity: 2}}

	testCases := []struct {
		name         string
		cart         []entities.CartLine
		shipping     entities.Address
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:         "empty cart",
			cart:         nil,
			shipping:     validAddress(),
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrEmptyCart,
		},
		{
			name:         "non-positive quantity",
			cart:         []entities.CartLine{{ProductID: productID, Quantity: 0}},
			shipping:     validAddress(),
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:         "missing address field",
			cart:         cart,
			shipping:     entities.Address{Name: "Ivan"},
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrInvalidAddress,
		},
		{
			name:     "inactive product",
			cart:     cart,
			shipping: validAddress(),
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo) {
				product := approvedProduct(shopID, 500, 10, 10)
				product.ID = productID
				product.Active = false
				catalog.EXPECT().GetProduct(mock.Anything, productID).Return(product, nil)
			},
			wantErr: entities.ErrProductUnavailable,
		},
		{
			name:     "suspended shop",
			cart:     cart,
			shipping: validAddress(),
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo) {
				product := approvedProduct(shopID, 500, 10, 10)
				product.ID = productID
				product.Shop.Status = entities.ShopStatusSuspended
				catalog.EXPECT().GetProduct(mock.Anything, productID).Return(product, nil)
			},
			wantErr: entities.ErrShopUnavailable,
		},
		{
			name:     "insufficient inventory",
			cart:     cart,
			shipping: validAddress(),
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo) {
				product := approvedProduct(shopID, 500, 10, 1)
				product.ID = productID
				catalog.EXPECT().GetProduct(mock.Anything, productID).Return(product, nil)
			},
			wantErr: entities.ErrInsufficientInventory,
		},
		{
			name:     "infra failure becomes persistence failure",
			cart:     cart,
			shipping: validAddress(),
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo) {
				product := approvedProduct(shopID, 500, 10, 10)
				product.ID = productID
				catalog.EXPECT().GetProduct(mock.Anything, productID).Return(product, nil)
				orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(errors.New("connection reset"))
			},
			wantErr: entities.ErrPersistenceFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(orders, catalog)

			svc := newTestService(orders, catalog, cache, notifier, tx)

			_, err := svc.PlaceOrder(context.Background(), customerID, tc.cart, tc.shipping, "")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrderService_PlaceOrder_InventoryErrorDetails(t *testing.T) {
	customerID := uuid.New()
	shopID := uuid.New()

	product := approvedProduct(shopID, 500, 10, 1)
	cart := []entities.CartLine{{ProductID: product.ID, Quantity: 3}}

	orders := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	passthroughTx(tx)

	catalog.EXPECT().GetProduct(mock.Anything, product.ID).Return(product, nil)

	svc := newTestService(orders, catalog, cache, notifier, tx)

	_, err := svc.PlaceOrder(context.Background(), customerID, cart, validAddress(), "")

	var invErr *entities.InventoryError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, product.ID, invErr.ProductID)
	assert.Equal(t, 3, invErr.Requested)
	assert.Equal(t, 1, invErr.Available)
}

func TestOrderService_PlaceOrder_NumberCollisionRetry(t *testing.T) {
	customerID := uuid.New()
	shopID := uuid.New()

	product := approvedProduct(shopID, 500, 10, 10)
	cart := []entities.CartLine{{ProductID: product.ID, Quantity: 1}}

	orders := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	passthroughTx(tx)

	catalog.EXPECT().GetProduct(mock.Anything, product.ID).Return(product, nil)

	var numbers []string
	// первая попытка упирается в уникальный индекс номера заказа
	orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, order entities.Order) {
			numbers = append(numbers, order.OrderNumber)
		}).
		Once().Return(entities.ErrOrderNumberTaken)
	orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, order entities.Order) {
			numbers = append(numbers, order.OrderNumber)
		}).
		Once().Return(nil)
	orders.EXPECT().SaveOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	catalog.EXPECT().ReserveInventory(mock.Anything, mock.Anything, 1).Return(nil)
	cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
	notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return()

	svc := newTestService(orders, catalog, cache, notifier, tx)

	order, err := svc.PlaceOrder(context.Background(), customerID, cart, validAddress(), "")
	require.NoError(t, err)

	require.Len(t, numbers, 2)
	assert.NotEqual(t, numbers[0], numbers[1])
	assert.Equal(t, numbers[1], order.OrderNumber)
}

func TestOrderService_TransitionStatus(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier)

	orderID := uuid.New()
	productA := uuid.New()
	productB := uuid.New()

	pendingOrder := entities.Order{
		ID:     orderID,
		Status: entities.StatusPending,
		Items: []entities.OrderItem{
			{ProductID: productA, Quantity: 3},
			{ProductID: productB, Quantity: 5},
		},
	}
	processingOrder := entities.Order{ID: orderID, Status: entities.StatusProcessing}
	deliveredOrder := entities.Order{ID: orderID, Status: entities.StatusDelivered}

	testCases := []struct {
		name         string
		target       entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
		checkOrder   func(t *testing.T, order entities.Order)
	}{
		{
			name:   "processing to shipped stamps shipped_at",
			target: entities.StatusShipped,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(processingOrder, nil)
				orders.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusProcessing, entities.StatusShipped, mock.Anything, (*time.Time)(nil)).
					Return(true, nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
				notifier.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything, entities.StatusProcessing).Return()
			},
			checkOrder: func(t *testing.T, order entities.Order) {
				assert.Equal(t, entities.StatusShipped, order.Status)
				assert.NotNil(t, order.ShippedAt)
				assert.Nil(t, order.DeliveredAt)
			},
		},
		{
			name:   "cancellation restores inventory",
			target: entities.StatusCancelled,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(pendingOrder, nil)
				orders.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusPending, entities.StatusCancelled, (*time.Time)(nil), (*time.Time)(nil)).
					Return(true, nil)
				catalog.EXPECT().
					RestoreInventory(mock.Anything, entities.InventoryTarget{ProductID: productA}, 3).
					Return(nil)
				catalog.EXPECT().
					RestoreInventory(mock.Anything, entities.InventoryTarget{ProductID: productB}, 5).
					Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
				notifier.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything, entities.StatusPending).Return()
			},
			checkOrder: func(t *testing.T, order entities.Order) {
				assert.Equal(t, entities.StatusCancelled, order.Status)
			},
		},
		{
			name:   "terminal status rejects transition",
			target: entities.StatusShipped,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(deliveredOrder, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:   "lost race reports current status",
			target: entities.StatusShipped,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				shipped := entities.Order{ID: orderID, Status: entities.StatusShipped}
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Once().Return(processingOrder, nil)
				orders.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusProcessing, entities.StatusShipped, mock.Anything, (*time.Time)(nil)).
					Return(false, nil)
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Once().Return(shipped, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:   "missing order",
			target: entities.StatusShipped,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "infra failure becomes persistence failure",
			target: entities.StatusShipped,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(processingOrder, nil)
				orders.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusProcessing, entities.StatusShipped, mock.Anything, (*time.Time)(nil)).
					Return(false, errors.New("connection reset"))
			},
			wantErr: entities.ErrPersistenceFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(orders, catalog, cache, notifier)

			svc := newTestService(orders, catalog, cache, notifier, tx)

			order, err := svc.TransitionStatus(context.Background(), orderID, tc.target)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.checkOrder(t, order)
		})
	}
}

func TestOrderService_TransitionStatus_UnknownStatus(t *testing.T) {
	orders := mocks.NewMockOrderRepo(t)
	catalog := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)

	svc := newTestService(orders, catalog, cache, notifier, tx)

	_, err := svc.TransitionStatus(context.Background(), uuid.New(), entities.OrderStatus("archived"))
	assert.Error(t, err)
}

func TestOrderService_CancelOrder(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier)

	orderID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	pendingOrder := entities.Order{
		ID:         orderID,
		CustomerID: customerID,
		Status:     entities.StatusPending,
		Items:      []entities.OrderItem{{ProductID: productID, Quantity: 2}},
	}
	shippedOrder := entities.Order{ID: orderID, CustomerID: customerID, Status: entities.StatusShipped}

	testCases := []struct {
		name         string
		requestedBy  uuid.UUID
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:        "OK",
			requestedBy: customerID,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(pendingOrder, nil)
				orders.EXPECT().
					UpdateOrderStatus(mock.Anything, orderID, entities.StatusPending, entities.StatusCancelled, (*time.Time)(nil), (*time.Time)(nil)).
					Return(true, nil)
				catalog.EXPECT().
					RestoreInventory(mock.Anything, entities.InventoryTarget{ProductID: productID}, 2).
					Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
				notifier.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything, entities.StatusPending).Return()
			},
		},
		{
			name:        "foreign order is not disclosed",
			requestedBy: uuid.New(),
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(pendingOrder, nil)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:        "already shipped",
			requestedBy: customerID,
			mockBehavior: func(orders *mocks.MockOrderRepo, catalog *mocks.MockCatalogRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(shippedOrder, nil)
			},
			wantErr: entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(orders, catalog, cache, notifier)

			svc := newTestService(orders, catalog, cache, notifier, tx)

			order, err := svc.CancelOrder(context.Background(), orderID, tc.requestedBy)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, order.Status)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, cache *mocks.MockCache)

	orderID := uuid.New()
	validOrder := entities.Order{ID: orderID, OrderNumber: "ORD-20260901-AB12CD", Status: entities.StatusPending}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "cache hit",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(orderID.String()).Return(validData, true)
			},
		},
		{
			name: "cache miss falls back to repo",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(orderID.String()).Return(nil, false)
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(validOrder, nil)
				cache.EXPECT().Set(orderID.String(), mock.Anything).Return()
			},
		},
		{
			name: "corrupted cache entry is dropped",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(orderID.String()).Return([]byte("garbage"), true)
				cache.EXPECT().Remove(orderID.String()).Return()
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(validOrder, nil)
				cache.EXPECT().Set(orderID.String(), mock.Anything).Return()
			},
		},
		{
			name: "not found is not retried",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(orderID.String()).Return(nil, false)
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).
					Once().Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "transient repo error is retried",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get(orderID.String()).Return(nil, false)
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).
					Once().Return(entities.Order{}, errors.New("temporary error"))
				orders.EXPECT().GetOrderByID(mock.Anything, orderID).
					Once().Return(validOrder, nil)
				cache.EXPECT().Set(orderID.String(), mock.Anything).Return()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)

			tc.mockBehavior(orders, cache)

			svc := newTestService(orders, catalog, cache, notifier, tx)

			order, err := svc.GetOrderByID(context.Background(), orderID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, validOrder.OrderNumber, order.OrderNumber)
		})
	}
}

func TestOrderService_ListOrdersByCustomer(t *testing.T) {
	customerID := uuid.New()

	testCases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default limit", limit: 0, wantLimit: 20},
		{name: "clamped limit", limit: 500, wantLimit: 100},
		{name: "explicit limit", limit: 5, wantLimit: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogRepo(t)
			cache := mocks.NewMockCache(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)

			orders.EXPECT().
				ListOrdersByCustomer(mock.Anything, customerID, tc.wantLimit).
				Return([]entities.Order{{ID: uuid.New()}}, nil)

			svc := newTestService(orders, catalog, cache, notifier, tx)

			got, err := svc.ListOrdersByCustomer(context.Background(), customerID, tc.limit)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}
