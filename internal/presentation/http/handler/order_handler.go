package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/electrostore-api/internal/application/service"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/request"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/response"
)

// OrderHandler handles checkout and shipment tracking requests
type OrderHandler struct {
	checkoutService *service.CheckoutService
	trackingService *service.TrackingService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(checkoutService *service.CheckoutService, trackingService *service.TrackingService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		trackingService: trackingService,
	}
}

// Checkout places an order for the signed-in customer
// @Summary Checkout
// @Description Place an order; requires an Idempotency-Key header
// @Tags orders
// @Accept json
// @Produce json
// @Param request body request.CheckoutRequest true "Cart"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	var req request.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]service.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	receipt, err := h.checkoutService.PlaceOrder(c.Request.Context(), sess, &service.CheckoutInput{
		Items:         items,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed successfully", receipt)
}

// TrackByOrderID returns the shipment state of an order
func (h *OrderHandler) TrackByOrderID(c *gin.Context) {
	orderID, ok := parseID(c, "order_id", "order")
	if !ok {
		return
	}

	result, err := h.trackingService.TrackByOrderID(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order found", result)
}

// TrackByContact finds orders by customer name plus email or phone
func (h *OrderHandler) TrackByContact(c *gin.Context) {
	var req request.TrackByContactRequest
	if !bindJSON(c, &req) {
		return
	}

	results, err := h.trackingService.TrackByContact(c.Request.Context(), &service.TrackByContactInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders found", results)
}

// UpdateShipmentStatus changes the shipment status of an order
func (h *OrderHandler) UpdateShipmentStatus(c *gin.Context) {
	orderID, ok := parseID(c, "order_id", "order")
	if !ok {
		return
	}

	var req request.UpdateShipmentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.trackingService.UpdateShipmentStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shipment status updated successfully", result)
}
