package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	Description  *string `json:"description"`
	Category     string  `json:"category" binding:"max=100"`
	Price        float64 `json:"price" binding:"gte=0"`
	Stock        int     `json:"stock" binding:"gte=0"`
	Image        *string `json:"image" binding:"omitempty,max=255"`
	Barcode      *string `json:"barcode" binding:"omitempty,max=100"`
	SerialNumber *string `json:"serial_number" binding:"omitempty,max=100"`
	Manufacturer *string `json:"manufacturer" binding:"omitempty,max=255"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category" binding:"omitempty,max=100"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock        *int     `json:"stock" binding:"omitempty,gte=0"`
	Image        *string  `json:"image" binding:"omitempty,max=255"`
	Barcode      *string  `json:"barcode" binding:"omitempty,max=100"`
	SerialNumber *string  `json:"serial_number" binding:"omitempty,max=100"`
	Manufacturer *string  `json:"manufacturer" binding:"omitempty,max=255"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	InStock   bool   `form:"in_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
