// Package catalog, as part of the product catalog module.
// This file, `dto.go`, defines the request/response payloads of the catalog
// endpoints that don't simply reuse the Product model.
package catalog

// CreateProductRequest is the payload for creating a listing.
// `name` and `price` are required; everything else is optional with
// documented defaults. Price is a pointer so "price absent" and "price 0"
// are distinguishable: 0 is a valid (if generous) price, absence is a 400.
type CreateProductRequest struct {
	Name        string   `json:"name" example:"Silla gamer"`
	Price       *float64 `json:"price" example:"100"`
	Description string   `json:"description,omitempty" example:"Como nueva"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Category    string   `json:"category,omitempty" example:"Muebles"`
	Condition   string   `json:"condition,omitempty" example:"Usado"`
	Seller      string   `json:"seller,omitempty" example:"Diego L."`
	Location    string   `json:"location,omitempty" example:"Anáhuac Cancún"`
}

// DeleteProductResponse echoes the removed product back to the client.
type DeleteProductResponse struct {
	Message string  `json:"message" example:"Producto eliminado"`
	Product Product `json:"product"`
}

// Defaults applied by the create handler when optional fields are absent.
const (
	defaultDescription = "Sin descripción"
	defaultCategory    = "Sin categoría"
	defaultCondition   = "Usado"
	defaultSeller      = "Vendedor Anónimo"
	defaultLocation    = "Anáhuac"
)
