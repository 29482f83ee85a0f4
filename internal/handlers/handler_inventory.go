package handlers

import (
	"net/http"

	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests for live inventory.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers all inventory routes.
func registerInventoryRoutes(rg *gin.RouterGroup, is portssvc.InventorySvcFacade) {
	h := newInventoryHandler(is)

	inventory := rg.Group("/inventory")
	{
		inventory.GET("", h.listInventory)
		inventory.GET("/low-stock", h.listLowStock)
		inventory.GET("/:productID", h.getInventory)
		inventory.PUT("/:productID", h.updateInventory)
	}
}

// listInventory godoc
// @Summary List live inventory
// @Tags inventory
// @Produce json
// @Success 200 {array} dto.InventoryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listInventory(c *gin.Context) {
	rows, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryResponseSlice(rows))
}

// listLowStock godoc
// @Summary List low stock rows
// @Description Lists inventory rows at or below their low stock threshold.
// @Tags inventory
// @Produce json
// @Success 200 {array} dto.InventoryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/low-stock [get]
func (h *inventoryHandler) listLowStock(c *gin.Context) {
	rows, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryResponseSlice(rows))
}

// getInventory godoc
// @Summary Get one inventory row
// @Tags inventory
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.InventoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{productID} [get]
func (h *inventoryHandler) getInventory(c *gin.Context) {
	row, err := h.inventoryService.GetInventoryByProductID(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryResponse(*row))
}

// updateInventory godoc
// @Summary Correct an inventory row
// @Description Manually overwrites quantity and/or threshold. Staff or admin.
// @Tags inventory
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param inventory body dto.UpdateInventoryRequest true "Fields to change"
// @Success 200 {object} dto.InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{productID} [put]
func (h *inventoryHandler) updateInventory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	row, err := h.inventoryService.UpdateInventory(c.Request.Context(), userID, c.Param("productID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryResponse(*row))
}
