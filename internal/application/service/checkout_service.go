package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/config"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/enum"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/domain/session"
	"github.com/sangkips/electrostore-api/internal/infrastructure/cache"
	"github.com/sangkips/electrostore-api/pkg/apperror"
	"github.com/sangkips/electrostore-api/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService turns a cart into a paid, shippable order
type CheckoutService struct {
	productRepo      repository.ProductRepository
	productCache     cache.ProductCache
	orderRepo        repository.OrderRepository
	notificationRepo repository.NotificationRepository
	cfg              config.CheckoutConfig
	logger           *zap.Logger
	now              func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	productRepo repository.ProductRepository,
	productCache cache.ProductCache,
	orderRepo repository.OrderRepository,
	notificationRepo repository.NotificationRepository,
	cfg config.CheckoutConfig,
	logger *zap.Logger,
) *CheckoutService {
	if productCache == nil {
		productCache = cache.NewNoopProductCache()
	}
	return &CheckoutService{
		productRepo:      productRepo,
		productCache:     productCache,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		cfg:              cfg,
		logger:           logger.Named("checkout"),
		now:              time.Now,
	}
}

// CheckoutItem is one cart line
type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	Items         []CheckoutItem
	PaymentMethod string
}

// Totals is the money breakdown of an order, in cents
type Totals struct {
	SubTotal    int64
	ShippingFee int64
	Tax         int64
	Total       int64
}

// ComputeTotals applies the tax rate and flat shipping fee to a subtotal
func ComputeTotals(subTotal int64, cfg config.CheckoutConfig) Totals {
	t := Totals{SubTotal: subTotal}
	if subTotal > 0 {
		t.ShippingFee = entity.CentsFromDecimal(cfg.ShippingFee)
	}
	t.Tax = decimal.NewFromInt(subTotal).Mul(decimal.NewFromFloat(cfg.TaxRate)).Round(0).IntPart()
	t.Total = t.SubTotal + t.ShippingFee + t.Tax
	return t
}

// PlaceOrder prices the cart at current product prices, reserves stock and
// records the order with its payment, shipment and invoice
func (s *CheckoutService) PlaceOrder(ctx context.Context, sess session.Session, input *CheckoutInput) (*entity.Receipt, error) {
	if !sess.IsCustomer() {
		return nil, apperror.ErrForbidden
	}

	method, err := enum.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, apperror.NewFieldError("payment_method", "payment_method must be one of card, paypal, e-banking")
	}

	lines, err := mergeItems(input.Items)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	now := s.now().UTC()
	order := &entity.Order{
		CustomerID: sess.SubjectID,
		OrderDate:  now,
		Items:      make([]entity.OrderItem, 0, len(lines)),
	}
	var fieldErrors []apperror.FieldError
	for i, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", line.ProductID))
		}
		if !product.InStock(line.Quantity) {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: fmt.Sprintf("only %d of %s in stock", product.Stock, product.Name),
			})
			continue
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}
	if len(fieldErrors) > 0 {
		return nil, insufficientStock(fieldErrors)
	}

	totals := ComputeTotals(order.LineTotal(), s.cfg)
	order.TotalAmount = totals.SubTotal
	order.Payment = &entity.Payment{
		Method: method,
		Amount: totals.Total,
		Status: entity.PaymentStatusCompleted,
		PaidAt: now,
	}
	order.Shipment = &entity.Shipment{
		TrackingNumber: utils.GenerateTrackingNumber(),
		Status:         enum.ShipmentStatusPending,
	}
	order.Invoice = &entity.Invoice{
		InvoiceNo:   utils.GenerateInvoiceNo(now),
		IssuedAt:    now,
		SubTotal:    totals.SubTotal,
		ShippingFee: totals.ShippingFee,
		Tax:         totals.Tax,
		Total:       totals.Total,
	}

	if err := s.orderRepo.PlaceOrder(ctx, order); err != nil {
		// Stock moved between the read above and the reservation
		var stockErr *repository.InsufficientStockError
		if errors.As(err, &stockErr) {
			fields := make([]apperror.FieldError, 0, len(stockErr.ProductIDs))
			for _, id := range stockErr.ProductIDs {
				fields = append(fields, apperror.FieldError{Field: "items", Message: fmt.Sprintf("insufficient stock for product %s", id)})
			}
			return nil, insufficientStock(fields)
		}
		s.logger.Error("failed to place order", zap.String("customer_id", sess.SubjectID.String()), zap.Error(err))
		return nil, err
	}

	// Cached products still carry the stock from before the order
	for _, item := range order.Items {
		if err := s.productCache.Invalidate(ctx, item.ProductID); err != nil {
			s.logger.Warn("product cache invalidation failed", zap.String("product_id", item.ProductID.String()), zap.Error(err))
		}
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", sess.SubjectID.String()),
		zap.Int64("total_cents", totals.Total),
	)

	if err := s.notificationRepo.Create(ctx, &entity.Notification{
		CustomerID: sess.SubjectID,
		Type:       entity.NotificationOrderPlaced,
		Content:    fmt.Sprintf("Your order %s has been placed. Tracking number: %s", order.ID, order.Shipment.TrackingNumber),
	}); err != nil {
		s.logger.Warn("failed to record order notification", zap.String("order_id", order.ID.String()), zap.Error(err))
	}

	placed, err := s.orderRepo.GetWithDetails(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if placed == nil {
		placed = order
	}
	return entity.NewReceipt(placed), nil
}

// mergeItems validates cart lines and folds repeated products together
func mergeItems(items []CheckoutItem) ([]CheckoutItem, error) {
	if len(items) == 0 {
		return nil, apperror.NewFieldError("items", "at least one item is required")
	}
	merged := make([]CheckoutItem, 0, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for i, item := range items {
		if item.ProductID == uuid.Nil {
			return nil, apperror.NewFieldError(fmt.Sprintf("items[%d].product_id", i), "product_id is required")
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewFieldError(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
		}
		if at, ok := index[item.ProductID]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged, nil
}

func insufficientStock(fields []apperror.FieldError) error {
	err := apperror.NewBadRequestError("Insufficient stock")
	err.Errors = fields
	return err
}
