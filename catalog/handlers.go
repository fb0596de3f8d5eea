// Package catalog, as part of the product catalog module.
// This file, `handlers.go`, is the HTTP layer over the Store. Each handler is
// a stateless transformation of (request, store, optional identity) into a
// response; all state lives in the injected Store.
package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/market-go/apperror"
	"github.com/user/market-go/auth"
)

// invalidCreateMessage is the contract string for a create request whose
// name or price fails validation.
const invalidCreateMessage = "name y price son obligatorios y válidos"

// Handlers provides the HTTP handlers for the catalog endpoints.
type Handlers struct {
	store *Store
}

// NewHandlers creates new catalog Handlers over the given store.
func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store}
}

// HandleList godoc
// @Summary List products
// @Description Returns the full catalog, most recently created first. No pagination, no filtering.
// @Tags Products
// @Produce json
// @Success 200 {array} catalog.Product "The ordered catalog"
// @Router /products [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Never fails: worst case is an empty array.
		auth.WriteJSON(w, http.StatusOK, h.store.List())
	}
}

// HandleGet godoc
// @Summary Get a product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} apperror.ErrorResponse "Producto no encontrado"
// @Router /products/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			// A non-numeric id cannot match anything, so it reports the same
			// not-found as a missing id rather than a distinct bad-request.
			// Intentional simplification carried over from the original.
			auth.WriteError(w, r, apperror.NewNotFoundError(notFoundMessage, nil))
			return
		}

		product, err := h.store.Get(id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, product)
	}
}

// HandleCreate godoc
// @Summary Create a product
// @Description Creates a listing. `name` and `price` are required; the other fields default when absent. When the auth gate is active the request must carry `Authorization: Bearer <token>` and the creator's email is stamped on the product.
// @Tags Products
// @Accept json
// @Produce json
// @Param productBody body catalog.CreateProductRequest true "Product to create"
// @Success 201 {object} catalog.Product "Created product, id assigned, first in the catalog"
// @Failure 400 {object} apperror.ErrorResponse "name y price son obligatorios y válidos"
// @Failure 401 {object} apperror.ErrorResponse "No autorizado"
// @Security BearerAuth
// @Router /products [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError(invalidCreateMessage, err))
			return
		}
		defer r.Body.Close()

		// name must be a non-empty string AND price a JSON number; everything
		// else is optional. Same check, same message as the original.
		if req.Name == "" || req.Price == nil {
			auth.WriteError(w, r, apperror.NewValidationError(invalidCreateMessage, nil))
			return
		}

		product := Product{
			Name:        req.Name,
			Price:       *req.Price,
			Description: orDefault(req.Description, defaultDescription),
			Category:    orDefault(req.Category, defaultCategory),
			Condition:   orDefault(req.Condition, defaultCondition),
			ImageURL:    req.ImageURL, // stays null when absent
			Seller:      orDefault(req.Seller, defaultSeller),
			Location:    orDefault(req.Location, defaultLocation),
		}

		// When the request passed through the gate, stamp the creator.
		// Without the gate no identity exists and the field stays empty.
		if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
			product.CreatedBy = claims.Email
		}

		created := h.store.Insert(product)
		auth.WriteJSON(w, http.StatusCreated, created)
	}
}

// HandleDelete godoc
// @Summary Delete a product
// @Description Removes the product with the given id and echoes it back. Deleting the same id twice succeeds once and then reports not-found.
// @Tags Products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} catalog.DeleteProductResponse
// @Failure 404 {object} apperror.ErrorResponse "Producto no encontrado"
// @Failure 401 {object} apperror.ErrorResponse "No autorizado"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			auth.WriteError(w, r, apperror.NewNotFoundError(notFoundMessage, nil))
			return
		}

		removed, err := h.store.Remove(id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, DeleteProductResponse{
			Message: "Producto eliminado",
			Product: removed,
		})
	}
}

// orDefault returns fallback when value is empty.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
