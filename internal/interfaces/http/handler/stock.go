package handler

import (
	inventoryapp "github.com/flowstock/backend/internal/application/inventory"
	"github.com/flowstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// StockHandler handles per-warehouse stock API endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// GetQuantity godoc
// @ID           getStockQuantity
// @Summary      Get stock quantity
// @Description  Return the on-hand quantity of one item in one warehouse. Items without a stock row report zero.
// @Tags         stocks
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Param        item_type path string true "Item type" Enums(product, variant)
// @Param        item_id path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Router       /inventory/warehouses/{id}/stocks/{item_type}/{item_id} [get]
func (h *StockHandler) GetQuantity(c *gin.Context) {
	warehouseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	itemID, err := parseUUIDParam(c, "item_id")
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	quantity, err := h.stockService.GetQuantity(c.Request.Context(), warehouseID, c.Param("item_type"), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quantity)
}

// SetQuantity godoc
// @ID           setStockQuantity
// @Summary      Set stock quantity
// @Description  Set the absolute on-hand quantity of one item in one warehouse, creating the stock row if needed
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.SetQuantityRequest true "Quantity to set"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /inventory/stocks [put]
func (h *StockHandler) SetQuantity(c *gin.Context) {
	var req inventoryapp.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stock, err := h.stockService.SetQuantity(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// ListByWarehouse godoc
// @ID           listWarehouseStocks
// @Summary      List a warehouse's stock rows
// @Tags         stocks
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /inventory/warehouses/{id}/stocks [get]
func (h *StockHandler) ListByWarehouse(c *gin.Context) {
	warehouseID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.stockService.ListByWarehouse(c.Request.Context(), warehouseID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListByItem godoc
// @ID           listItemStocks
// @Summary      List an item's stock across warehouses
// @Tags         stocks
// @Produce      json
// @Param        item_type path string true "Item type" Enums(product, variant)
// @Param        item_id path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Router       /inventory/items/{item_type}/{item_id}/stocks [get]
func (h *StockHandler) ListByItem(c *gin.Context) {
	itemID, err := parseUUIDParam(c, "item_id")
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	stocks, err := h.stockService.ListByItem(c.Request.Context(), c.Param("item_type"), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stocks)
}
