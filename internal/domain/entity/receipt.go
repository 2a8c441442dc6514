package entity

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is the checkout confirmation returned to the customer.
// It is composed from an order and its payment, shipment and invoice.
type Receipt struct {
	OrderID        string        `json:"order_id"`
	InvoiceNo      string        `json:"invoice_no"`
	Date           string        `json:"date"`
	Customer       string        `json:"customer,omitempty"`
	PaymentMethod  string        `json:"payment_method"`
	PaymentStatus  string        `json:"payment_status"`
	TrackingNumber string        `json:"tracking_number"`
	ShipmentStatus string        `json:"shipment_status"`
	Items          []ReceiptItem `json:"items"`
	SubTotal       float64       `json:"sub_total"`
	ShippingFee    float64       `json:"shipping_fee"`
	Tax            float64       `json:"tax"`
	Total          float64       `json:"total"`
}

// NewReceipt builds a receipt from a fully loaded order
func NewReceipt(o *Order) *Receipt {
	r := &Receipt{
		OrderID: o.ID.String(),
		Date:    o.OrderDate.Format("2006-01-02 15:04"),
		Items:   make([]ReceiptItem, 0, len(o.Items)),
	}
	if o.Customer != nil {
		r.Customer = o.Customer.Name
	}
	for _, item := range o.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		r.Items = append(r.Items, ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: DecimalFromCents(item.UnitPrice),
			Total:     DecimalFromCents(item.Total()),
		})
	}
	if o.Payment != nil {
		r.PaymentMethod = o.Payment.Method.String()
		r.PaymentStatus = o.Payment.Status
	}
	if o.Shipment != nil {
		r.TrackingNumber = o.Shipment.TrackingNumber
		r.ShipmentStatus = o.Shipment.Status.String()
	}
	if o.Invoice != nil {
		r.InvoiceNo = o.Invoice.InvoiceNo
		r.SubTotal = DecimalFromCents(o.Invoice.SubTotal)
		r.ShippingFee = DecimalFromCents(o.Invoice.ShippingFee)
		r.Tax = DecimalFromCents(o.Invoice.Tax)
		r.Total = DecimalFromCents(o.Invoice.Total)
	}
	return r
}
