package handler

import (
	bundleapp "github.com/flowstock/backend/internal/application/bundle"
	"github.com/flowstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BundleHandler handles bundle API endpoints, including availability
// calculation and sale
type BundleHandler struct {
	BaseHandler
	bundleService *bundleapp.BundleService
	calculator    *bundleapp.StockCalculator
	transactor    *bundleapp.SaleTransactor
}

// NewBundleHandler creates a new BundleHandler
func NewBundleHandler(
	bundleService *bundleapp.BundleService,
	calculator *bundleapp.StockCalculator,
	transactor *bundleapp.SaleTransactor,
) *BundleHandler {
	return &BundleHandler{
		bundleService: bundleService,
		calculator:    calculator,
		transactor:    transactor,
	}
}

// Create godoc
// @ID           createBundle
// @Summary      Create a bundle
// @Description  Create a bundle from product and variant components at a fixed price
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        request body bundleapp.CreateBundleRequest true "Bundle creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /catalog/bundles [post]
func (h *BundleHandler) Create(c *gin.Context) {
	var req bundleapp.CreateBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bundle, err := h.bundleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, bundle)
}

// Get godoc
// @ID           getBundle
// @Summary      Get a bundle
// @Tags         bundles
// @Produce      json
// @Param        id path string true "Bundle ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /catalog/bundles/{id} [get]
func (h *BundleHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bundle ID format")
		return
	}

	bundle, err := h.bundleService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bundle)
}

// List godoc
// @ID           listBundles
// @Summary      List bundles
// @Tags         bundles
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search term (name, description)"
// @Success      200 {object} dto.Response
// @Router       /catalog/bundles [get]
func (h *BundleHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.bundleService.List(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @ID           updateBundle
// @Summary      Update a bundle
// @Description  Update a bundle's name, description or price. Items are managed through the item endpoints.
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        id path string true "Bundle ID" format(uuid)
// @Param        request body bundleapp.UpdateBundleRequest true "Bundle update request"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /catalog/bundles/{id} [put]
func (h *BundleHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bundle ID format")
		return
	}

	var req bundleapp.UpdateBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bundle, err := h.bundleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bundle)
}

// AddItem godoc
// @ID           addBundleItem
// @Summary      Add a bundle component
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        id path string true "Bundle ID" format(uuid)
// @Param        request body bundleapp.BundleItemRequest true "Component to add"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /catalog/bundles/{id}/items [post]
func (h *BundleHandler) AddItem(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bundle ID format")
		return
	}

	var req bundleapp.BundleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bundle, err := h.bundleService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bundle)
}

// RemoveItem godoc
// @ID           removeBundleItem
// @Summary      Remove a bundle component
// @Tags         bundles
// @Produce      json
// @Param        id path string true "Bundle ID" format(uuid)
// @Param        item_type path string true "Item type" Enums(product, variant)
// @Param        item_id path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /catalog/bundles/{id}/items/{item_type}/{item_id} [delete]
func (h *BundleHandler) RemoveItem(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bundle ID format")
		return
	}

	itemID, err := parseUUIDParam(c, "item_id")
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	bundle, err := h.bundleService.RemoveItem(c.Request.Context(), id, c.Param("item_type"), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bundle)
}

// Delete godoc
// @ID           deleteBundle
// @Summary      Delete a bundle
// @Tags         bundles
// @Produce      json
// @Param        id path string true "Bundle ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Router       /catalog/bundles/{id} [delete]
func (h *BundleHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bundle ID format")
		return
	}

	if err := h.bundleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CalculateStock godoc
// @ID           calculateBundleStock
// @Summary      Calculate bundle availability
// @Description  Compute how many bundles a warehouse can assemble, with the per-component breakdown and bottleneck
// @Tags         bundles
// @Produce      json
// @Param        id path string true "Bundle ID" format(uuid)
// @Param        warehouse_id query string true "Warehouse ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /catalog/bundles/{id}/stock [get]
func (h *BundleHandler) CalculateStock(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bundle ID format")
		return
	}

	warehouseID, err := uuid.Parse(c.Query("warehouse_id"))
	if err != nil {
		h.BadRequest(c, "Invalid or missing warehouse_id")
		return
	}

	result, err := h.calculator.Calculate(c.Request.Context(), id, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Sell godoc
// @ID           sellBundle
// @Summary      Sell a bundle
// @Description  Atomically deduct component stock for a bundle sale. All rows commit or none do.
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        id path string true "Bundle ID" format(uuid)
// @Param        request body bundleapp.SellBundleRequest true "Sale request"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /catalog/bundles/{id}/sell [post]
func (h *BundleHandler) Sell(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid bundle ID format")
		return
	}

	var req bundleapp.SellBundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.transactor.Sell(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
