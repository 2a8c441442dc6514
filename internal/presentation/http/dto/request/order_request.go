package request

import "github.com/google/uuid"

// CheckoutItemRequest is one cart line
type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest represents a checkout request
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                `json:"payment_method" binding:"omitempty,oneof=card paypal e-banking"`
}

// TrackByContactRequest looks orders up by name plus email or phone
type TrackByContactRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required_without=Phone,omitempty,email"`
	Phone string `json:"phone" binding:"required_without=Email,omitempty,max=50"`
}

// UpdateShipmentStatusRequest represents an admin status change
type UpdateShipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
