package handlers

import (
	"net/http"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/gin-gonic/gin"
)

// legacyHandler serves the flat pre-v1 API shapes so older clients keep
// working against the canonical catalog + inventory model.
type legacyHandler struct {
	productService   portssvc.ProductSvcFacade
	inventoryService portssvc.InventorySvcFacade
	saleService      portssvc.SaleSvcFacade
	reportingService portssvc.ReportingSvcFacade
	userService      portssvc.UserSvcFacade
}

func newLegacyHandler(
	ps portssvc.ProductSvcFacade,
	is portssvc.InventorySvcFacade,
	ss portssvc.SaleSvcFacade,
	rs portssvc.ReportingSvcFacade,
	us portssvc.UserSvcFacade,
) *legacyHandler {
	return &legacyHandler{
		productService:   ps,
		inventoryService: is,
		saleService:      ss,
		reportingService: rs,
		userService:      us,
	}
}

// registerLegacyRoutes registers the pre-v1 aliases under /api.
func registerLegacyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newLegacyHandler(services.Product, services.Inventory, services.Sale, services.Reporting, services.User)

	rg.GET("/items", h.listItems)
	rg.POST("/items", h.createItem)
	rg.GET("/sales", h.listSales)
	rg.POST("/sales", h.createSale)
	rg.GET("/reports/sales", h.salesReport)
	rg.GET("/reports/stock", h.stockReport)
	rg.GET("/admin/users/:id", h.getUser)
	rg.PUT("/admin/users/:id", h.updateUser)
	rg.DELETE("/admin/users/:id", h.deleteUser)
}

// listItems godoc
// @Summary List items (legacy)
// @Description Lists products flattened with their inventory rows.
// @Tags legacy
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [get]
func (h *legacyHandler) listItems(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	inventory, err := h.inventoryService.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	byProduct := make(map[string]int, len(inventory))
	for i, row := range inventory {
		byProduct[row.ProductID] = i
	}

	items := make([]dto.ItemResponse, 0, len(products))
	for _, p := range products {
		idx, ok := byProduct[p.ProductID]
		if !ok {
			continue
		}
		items = append(items, dto.ToItemResponse(p, inventory[idx]))
	}
	c.JSON(http.StatusOK, items)
}

// createItem godoc
// @Summary Create an item (legacy)
// @Description Creates a product and its inventory row from the flat legacy shape. Staff or admin.
// @Tags legacy
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [post]
func (h *legacyHandler) createItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), userID, dto.CreateProductRequest{
		Name:              req.Name,
		SellingPrice:      req.Price,
		InitialQuantity:   req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	inventory, err := h.inventoryService.GetInventoryByProductID(c.Request.Context(), product.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(*product, *inventory))
}

// listSales godoc
// @Summary List sales (legacy)
// @Tags legacy
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *legacyHandler) listSales(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponseSlice(sales))
}

// createSale godoc
// @Summary Record a sale (legacy)
// @Description Records a sale using the item_id naming. Staff or admin.
// @Tags legacy
// @Accept json
// @Produce json
// @Param sale body dto.LegacyCreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /sales [post]
func (h *legacyHandler) createSale(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.LegacyCreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), userID, dto.CreateSaleRequest{
		ProductID:     req.ItemID,
		Quantity:      req.QuantitySold,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(*sale))
}

// salesReport godoc
// @Summary Sales report (legacy)
// @Tags legacy
// @Produce json
// @Success 200 {object} domain.SalesReport
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *legacyHandler) salesReport(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetSalesReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// stockReport godoc
// @Summary Stock report (legacy)
// @Tags legacy
// @Produce json
// @Success 200 {object} domain.StockReport
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/stock [get]
func (h *legacyHandler) stockReport(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetStockReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getUser godoc
// @Summary Get an account (legacy)
// @Tags legacy
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [get]
func (h *legacyHandler) getUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if _, err := h.userService.AuthorizeAction(c.Request.Context(), userID, domain.ActionManageUsers); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update an account (legacy)
// @Tags legacy
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *legacyHandler) updateUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete an account (legacy)
// @Tags legacy
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *legacyHandler) deleteUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
