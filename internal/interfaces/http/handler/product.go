package handler

import (
	catalogapp "github.com/flowstock/backend/internal/application/catalog"
	"github.com/flowstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product master and variant API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	generator      *catalogapp.VariantGenerator
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, generator *catalogapp.VariantGenerator) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		generator:      generator,
	}
}

// Create godoc
// @ID           createProduct
// @Summary      Create a product master
// @Description  Create a product master, optionally with its variant options
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductRequest true "Product creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /catalog/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Get godoc
// @ID           getProduct
// @Summary      Get a product master
// @Description  Retrieve a product master with its options and values
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /catalog/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// List godoc
// @ID           listProducts
// @Summary      List product masters
// @Description  Retrieve a paginated list of product masters
// @Tags         products
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search term (name, description)"
// @Success      200 {object} dto.Response
// @Router       /catalog/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.productService.List(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @ID           updateProduct
// @Summary      Update a product master
// @Description  Update a product master's name and description
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdateProductRequest true "Product update request"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /catalog/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// AddOption godoc
// @ID           addProductOption
// @Summary      Add a variant option
// @Description  Add a configurable option with its values to a product master
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.CreateOptionRequest true "Option creation request"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /catalog/products/{id}/options [post]
func (h *ProductHandler) AddOption(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req catalogapp.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.AddOption(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete godoc
// @ID           deleteProduct
// @Summary      Delete a product master
// @Description  Delete a product master together with its variants. Fails when a bundle still references the product or one of its variants.
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /catalog/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GenerateVariants godoc
// @ID           generateVariants
// @Summary      Generate variants
// @Description  Expand the Cartesian product of the selected option values into concrete variants
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.GenerateVariantsRequest true "Generation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /catalog/products/{id}/variants/generate [post]
func (h *ProductHandler) GenerateVariants(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req catalogapp.GenerateVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListVariants godoc
// @ID           listProductVariants
// @Summary      List a product's variants
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /catalog/products/{id}/variants [get]
func (h *ProductHandler) ListVariants(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.productService.ListVariants(c.Request.Context(), id, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetVariant godoc
// @ID           getVariant
// @Summary      Get a variant
// @Tags         products
// @Produce      json
// @Param        id path string true "Variant ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /catalog/variants/{id} [get]
func (h *ProductHandler) GetVariant(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	variant, err := h.productService.GetVariant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, variant)
}

// DeleteVariant godoc
// @ID           deleteVariant
// @Summary      Delete a variant
// @Description  Delete a variant. Fails when a bundle still references it.
// @Tags         products
// @Produce      json
// @Param        id path string true "Variant ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /catalog/variants/{id} [delete]
func (h *ProductHandler) DeleteVariant(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid variant ID format")
		return
	}

	if err := h.productService.DeleteVariant(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
