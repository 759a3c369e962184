package transport

import (
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload. UnitPrice is
// a pointer so an explicit 0 passes the required check.
type CreateProductRequest struct {
	Name         string   `json:"name" validate:"required,notblank,min=2,max=100"`
	Description  string   `json:"description" validate:"max=500"`
	UnitPrice    *float64 `json:"unitPrice" validate:"required,gte=0"`
	UnitsInStock int      `json:"unitsInStock" validate:"gte=0"`
	ImageURL     string   `json:"imageUrl" validate:"max=2048"`
	CategoryID   int      `json:"categoryId" validate:"required"`
}

// UpdateProductRequest represents the product update payload
type UpdateProductRequest struct {
	ID int `json:"id" validate:"required"`
	CreateProductRequest
}

func (req CreateProductRequest) input() service.CreateProductInput {
	return service.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		UnitPrice:    *req.UnitPrice,
		UnitsInStock: req.UnitsInStock,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
	}
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns every product
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListAll(r.Context())
	if err != nil {
		middleware.RespondWithServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Get returns one product
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		middleware.RespondWithServiceError(w, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	product, err := h.productService.Create(r.Context(), req.input())
	if err != nil {
		middleware.RespondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product created",
		zap.Int("product_id", product.ID),
		zap.Int("category_id", product.CategoryID),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// Update replaces a product; the id travels in the body
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	product, err := h.productService.Update(r.Context(), service.UpdateProductInput{
		ID:                 req.ID,
		CreateProductInput: req.input(),
	})
	if err != nil {
		middleware.RespondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product updated", zap.Int("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete handles product removal
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.productService.Delete(r.Context(), id)
	if err != nil {
		middleware.RespondWithServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("Product deleted", zap.Int("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, product)
}
