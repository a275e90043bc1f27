package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/vendora/order-service/internal/entities"
	"github.com/vendora/order-service/internal/middleware"
	"github.com/vendora/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, cart []entities.CartLine, shipping entities.Address, notes string) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]entities.Order, error)
	TransitionStatus(ctx context.Context, orderID uuid.UUID, target entities.OrderStatus) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, requestedBy uuid.UUID) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(middleware.WithIdentity)

		r.Post("/", h.PlaceOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{order_id}", h.GetOrderByID)
		r.Patch("/{order_id}/status", h.TransitionStatus)
		r.Post("/{order_id}/cancel", h.CancelOrder)
	})
}

// PlaceOrder создает заказ из корзины покупателя
// @Summary      Разместить заказ
// @Tags         orders
// @Param        request  body  PlaceOrderRequest  true  "Корзина и адрес доставки"
// @Success      201  {object}  Order
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := req.Cart()
	if err != nil {
		utils.WriteError(w, "invalid product or variant id", http.StatusBadRequest)
		return
	}

	start := time.Now()
	order, err := h.svc.PlaceOrder(ctx, identity.UserID, cart, AddressJSONToEntity(req.ShippingAddress), req.Notes)
	orderPlacementDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		ordersRejected.WithLabelValues(rejectionReason(err)).Inc()
		if errors.Is(err, entities.ErrInsufficientInventory) {
			inventoryConflicts.Inc()
		}
		h.writeDomainError(ctx, w, err)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Order
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	// покупатель видит только свои заказы
	if identity.Role != middleware.RoleAdmin && order.CustomerID != identity.UserID {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает историю заказов покупателя
// @Summary      История заказов
// @Tags         orders
// @Success      200  {array}  Order
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, err := h.svc.ListOrdersByCustomer(ctx, identity.UserID, limit)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// TransitionStatus переводит заказ в новый статус (продавец или админ)
// @Summary      Сменить статус заказа
// @Tags         orders
// @Param        order_id  path  string             true  "ID заказа"
// @Param        request   body  TransitionRequest  true  "Целевой статус"
// @Success      200  {object}  Order
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if identity.Role != middleware.RoleSeller && identity.Role != middleware.RoleAdmin {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req TransitionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target, err := entities.ToOrderStatus(req.Status)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.TransitionStatus(ctx, orderID, target)
	if err != nil {
		if errors.Is(err, entities.ErrIllegalTransition) {
			illegalTransitions.Inc()
		}
		h.writeDomainError(ctx, w, err)
		return
	}

	statusTransitions.WithLabelValues(string(target)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет ожидающий оплаты заказ покупателя
// @Summary      Отменить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Order
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.CancelOrder(ctx, orderID, identity.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrIllegalTransition) {
			illegalTransitions.Inc()
		}
		h.writeDomainError(ctx, w, err)
		return
	}

	statusTransitions.WithLabelValues(string(entities.StatusCancelled)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	var invErr *entities.InventoryError
	if errors.As(err, &invErr) {
		details := map[string]any{
			"product_id": invErr.ProductID.String(),
			"requested":  invErr.Requested,
			"available":  invErr.Available,
		}
		if invErr.VariantID != nil {
			details["variant_id"] = invErr.VariantID.String()
		}
		utils.WriteErrorDetails(w, invErr.Error(), details, http.StatusConflict)
		return
	}

	var trErr *entities.TransitionError
	if errors.As(err, &trErr) {
		details := map[string]any{
			"from": string(trErr.From),
			"to":   string(trErr.To),
		}
		utils.WriteErrorDetails(w, trErr.Error(), details, http.StatusConflict)
		return
	}

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidAddress):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductUnavailable),
		errors.Is(err, entities.ErrShopUnavailable),
		errors.Is(err, entities.ErrVariantUnavailable):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrProductUnavailable):
		return "product_unavailable"
	case errors.Is(err, entities.ErrShopUnavailable):
		return "shop_unavailable"
	case errors.Is(err, entities.ErrVariantUnavailable):
		return "variant_unavailable"
	case errors.Is(err, entities.ErrInsufficientInventory):
		return "insufficient_inventory"
	case errors.Is(err, entities.ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, entities.ErrEmptyCart), errors.Is(err, entities.ErrInvalidQuantity):
		return "invalid_cart"
	default:
		return "internal"
	}
}
