package handler

import (
	inventoryapp "github.com/flowstock/backend/internal/application/inventory"
	"github.com/flowstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// WarehouseHandler handles warehouse API endpoints
type WarehouseHandler struct {
	BaseHandler
	warehouseService *inventoryapp.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(warehouseService *inventoryapp.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

// Create godoc
// @ID           createWarehouse
// @Summary      Create a warehouse
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        request body inventoryapp.CreateWarehouseRequest true "Warehouse creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /inventory/warehouses [post]
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	warehouse, err := h.warehouseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, warehouse)
}

// Get godoc
// @ID           getWarehouse
// @Summary      Get a warehouse
// @Tags         warehouses
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /inventory/warehouses/{id} [get]
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	warehouse, err := h.warehouseService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// List godoc
// @ID           listWarehouses
// @Summary      List warehouses
// @Tags         warehouses
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search term (name, location)"
// @Success      200 {object} dto.Response
// @Router       /inventory/warehouses [get]
func (h *WarehouseHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.warehouseService.List(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @ID           updateWarehouse
// @Summary      Update a warehouse
// @Description  Update a warehouse's name, location or active flag
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Param        request body inventoryapp.UpdateWarehouseRequest true "Warehouse update request"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /inventory/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	var req inventoryapp.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	warehouse, err := h.warehouseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// Delete godoc
// @ID           deleteWarehouse
// @Summary      Delete a warehouse
// @Description  Delete a warehouse. Fails while the warehouse still holds stock rows.
// @Tags         warehouses
// @Produce      json
// @Param        id path string true "Warehouse ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /inventory/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	if err := h.warehouseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
