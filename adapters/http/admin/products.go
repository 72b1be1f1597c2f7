package admin

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artpar/storeadmin/app"
	"github.com/artpar/storeadmin/domain/pricing"
	"github.com/artpar/storeadmin/domain/product"
)

// maxUploadBytes caps the raw multipart body before compression.
const maxUploadBytes = 20 << 20

// ProductRequest is the add/edit product form. Price and stock accept
// numbers or numeric strings.
type ProductRequest struct {
	Name               string   `json:"name" example:"PlayStation 5"`
	Brand              string   `json:"brand" example:"Sony"`
	Category           string   `json:"category" example:"Gaming"`
	Price              Number   `json:"price" swaggertype:"number" example:"499"`
	Stock              Number   `json:"stock" swaggertype:"integer" example:"10"`
	Description        string   `json:"description"`
	Image              string   `json:"image"`
	InstallmentPlanIDs []string `json:"installmentPlanIds"`
}

func (req ProductRequest) candidate() product.Candidate {
	return product.Candidate{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       req.Price.Float(),
		Stock:       req.Stock.Int(),
		Description: req.Description,
		Image:       req.Image,
		PlanIDs:     req.InstallmentPlanIDs,
	}
}

// AssignPlansRequest replaces a product's plan selection.
type AssignPlansRequest struct {
	PlanIDs []string `json:"planIds"`
}

// ProductListResponse lists products with their resolved plans.
type ProductListResponse struct {
	Products []app.ProductView `json:"products"`
	Total    int               `json:"total"`
	Brands   []string          `json:"brands"`
}

// QuotesResponse prices a product under each assigned plan.
type QuotesResponse struct {
	ProductID string             `json:"productId"`
	Quotes    []pricing.Schedule `json:"quotes"`
}

// ImageUploadResponse reports the stored image.
type ImageUploadResponse struct {
	Product      app.ProductView `json:"product"`
	OriginalSize int             `json:"originalSize"`
	FinalSize    int             `json:"finalSize"`
	Compressed   bool            `json:"compressed"`
}

// ListCategories returns the accepted product categories.
//
//	@Summary		List product categories
//	@Tags			Admin - Products
//	@Produce		json
//	@Success		200	{object}	map[string][]string
//	@Security		AdminAuth
//	@Router			/admin/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": h.products.Categories()})
}

// ListProducts returns the filtered catalog joined with plan names.
//
//	@Summary		List products
//	@Tags			Admin - Products
//	@Produce		json
//	@Param			search		query		string	false	"Case-insensitive match on name or brand"
//	@Param			category	query		string	false	"Category, or all"
//	@Param			brand		query		string	false	"Brand, or all"
//	@Success		200			{object}	ProductListResponse
//	@Security		AdminAuth
//	@Router			/admin/products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := product.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
	}

	views, err := h.products.View(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	brands, err := h.products.Brands(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if brands == nil {
		brands = []string{}
	}
	writeJSON(w, http.StatusOK, ProductListResponse{Products: views, Total: len(views), Brands: brands})
}

// GetProduct returns one product with its resolved plans.
//
//	@Summary		Get product
//	@Tags			Admin - Products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	app.ProductView
//	@Failure		404	{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	v, err := h.products.ViewOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// CreateProduct validates and stores a new product.
//
//	@Summary		Create product
//	@Tags			Admin - Products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProductRequest	true	"Product data"
//	@Success		201		{object}	app.ProductView
//	@Failure		422		{object}	ErrorResponse	"Validation failed"
//	@Security		AdminAuth
//	@Router			/admin/products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	p, err := h.products.Create(r.Context(), req.candidate())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeProduct(w, r, http.StatusCreated, p.ID)
}

// UpdateProduct replaces a product's attributes and plan selection.
//
//	@Summary		Update product
//	@Tags			Admin - Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Product ID"
//	@Param			request	body		ProductRequest	true	"Product data"
//	@Success		200		{object}	app.ProductView
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse	"Validation failed"
//	@Security		AdminAuth
//	@Router			/admin/products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	p, err := h.products.Update(r.Context(), chi.URLParam(r, "id"), req.candidate())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeProduct(w, r, http.StatusOK, p.ID)
}

// DeleteProduct removes a product.
//
//	@Summary		Delete product
//	@Tags			Admin - Products
//	@Param			id	path	string	true	"Product ID"
//	@Success		204
//	@Security		AdminAuth
//	@Router			/admin/products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignPlans replaces the product's plan selection.
//
//	@Summary		Assign installment plans
//	@Tags			Admin - Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Product ID"
//	@Param			request	body		AssignPlansRequest	true	"Selected plan IDs"
//	@Success		200		{object}	app.ProductView
//	@Failure		404		{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/products/{id}/plans [put]
func (h *Handler) AssignPlans(w http.ResponseWriter, r *http.Request) {
	var req AssignPlansRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	p, err := h.products.AssignPlans(r.Context(), chi.URLParam(r, "id"), req.PlanIDs)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeProduct(w, r, http.StatusOK, p.ID)
}

// TogglePlan adds or removes one plan from the product's selection.
//
//	@Summary		Toggle installment plan
//	@Tags			Admin - Products
//	@Produce		json
//	@Param			id		path		string	true	"Product ID"
//	@Param			planID	path		string	true	"Plan ID"
//	@Success		200		{object}	app.ProductView
//	@Failure		404		{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/products/{id}/plans/{planID}/toggle [post]
func (h *Handler) TogglePlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.TogglePlan(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "planID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeProduct(w, r, http.StatusOK, p.ID)
}

// ProductQuotes prices a product under each of its plans.
//
//	@Summary		Installment quotes
//	@Description	Weekly, monthly and total amounts for each resolvable plan, rounded to 2 decimals
//	@Tags			Admin - Products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	QuotesResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/products/{id}/quotes [get]
func (h *Handler) ProductQuotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	quotes, err := h.products.Quotes(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if quotes == nil {
		quotes = []pricing.Schedule{}
	}
	writeJSON(w, http.StatusOK, QuotesResponse{ProductID: id, Quotes: quotes})
}

// UploadImage compresses an uploaded image and stores it on the product.
//
//	@Summary		Upload product image
//	@Description	Accepts JPG, PNG or WebP. Images over the size budget are resized and re-encoded as JPEG.
//	@Tags			Admin - Products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Product ID"
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	ImageUploadResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/products/{id}/image [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Multipart field 'image' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Failed to read upload")
		return
	}

	res, err := h.images.Process(header.Filename, data)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := h.products.SetImage(r.Context(), id, res.DataURI); err != nil {
		h.writeServiceError(w, err)
		return
	}
	v, err := h.products.ViewOne(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.logger.Info().
		Str("product_id", id).
		Int("original_size", res.OriginalSize).
		Int("final_size", res.FinalSize).
		Bool("compressed", res.Compressed).
		Msg("product image stored")
	writeJSON(w, http.StatusOK, ImageUploadResponse{
		Product:      v,
		OriginalSize: res.OriginalSize,
		FinalSize:    res.FinalSize,
		Compressed:   res.Compressed,
	})
}

func (h *Handler) writeProduct(w http.ResponseWriter, r *http.Request, status int, id string) {
	v, err := h.products.ViewOne(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, status, v)
}
