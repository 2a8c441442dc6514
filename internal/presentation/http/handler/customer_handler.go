package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/electrostore-api/internal/application/service"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/request"
	"github.com/sangkips/electrostore-api/internal/presentation/http/dto/response"
)

// CustomerHandler serves the signed-in customer's own data
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Me returns the customer profile
func (h *CustomerHandler) Me(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetProfile(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", customer)
}

// UpdateMe changes the customer's contact details
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateProfile(c.Request.Context(), sess, &service.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", customer)
}

// Orders lists the customer's orders
func (h *CustomerHandler) Orders(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	result, err := h.customerService.ListOrders(c.Request.Context(), sess, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Orders retrieved successfully", result)
}

// Shipments lists the tracking state of the customer's orders
func (h *CustomerHandler) Shipments(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	results, err := h.customerService.ListShipments(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shipments retrieved successfully", results)
}

// Notifications lists the customer's notifications
func (h *CustomerHandler) Notifications(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	result, err := h.customerService.ListNotifications(c.Request.Context(), sess, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Notifications retrieved successfully", result)
}
