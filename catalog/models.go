// Package catalog implements the product catalog: the in-memory store holding
// the listings and the HTTP handlers exposing them. The catalog is the
// authoritative state of the process; everything in it vanishes on restart.
package catalog

// Product represents one marketplace listing.
// A product is never mutated in place: it is created whole by the create
// handler and removed whole by the delete handler.
// ImageURL is a pointer so an absent image serializes as JSON `null`, exactly
// as the original backend emitted it.
type Product struct {
	ID          int64   `json:"id" example:"1700000000000"`
	Name        string  `json:"name" example:"Macbook Air"`
	Price       float64 `json:"price" example:"4500"`
	Description string  `json:"description" example:"Laptop en buen estado."`
	Category    string  `json:"category" example:"Tecnología"`
	Condition   string  `json:"condition" example:"Usado"`
	ImageURL    *string `json:"imageUrl"`
	Seller      string  `json:"seller" example:"Diego L."`
	Location    string  `json:"location" example:"Anáhuac Cancún"`
	// CreatedBy is the identity of the authenticated creator. It is only
	// stamped when the bearer gate is active, hence omitempty.
	CreatedBy string `json:"createdBy,omitempty" example:"demo@anahuac.mx"`
}

// strPtr is a small helper for building seed data with literal image URLs.
func strPtr(s string) *string { return &s }

// seedProducts is the demo catalog the store starts with, mirroring the
// original backend's in-memory data. Most recent first.
func seedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Macbook Air",
			Price:       4500,
			Description: "Laptop en buen estado. Ideal para tareas y trabajos.",
			Category:    "Tecnología",
			Condition:   "Usado",
			ImageURL:    strPtr("https://images.pexels.com/photos/18105/pexels-photo.jpg"),
			Seller:      "Diego L.",
			Location:    "Anáhuac Cancún",
		},
		{
			ID:          2,
			Name:        "iPhone 15",
			Price:       6900,
			Description: "128 GB, excelente batería y cámara.",
			Category:    "Celulares",
			Condition:   "Nuevo",
			ImageURL:    strPtr("https://images.pexels.com/photos/47261/pexels-photo-47261.jpeg"),
			Seller:      "Ana R.",
			Location:    "Anáhuac Cancún",
		},
		{
			ID:          3,
			Name:        "Bocina JBL",
			Price:       800,
			Description: "Excelente sonido, buen volumen.",
			Category:    "Audio",
			Condition:   "Usado",
			ImageURL:    strPtr("https://images.pexels.com/photos/3394664/pexels-photo-3394664.jpeg"),
			Seller:      "Carlos M.",
			Location:    "Anáhuac Cancún",
		},
	}
}
