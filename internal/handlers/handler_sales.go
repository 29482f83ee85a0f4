package handlers

import (
	"net/http"

	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests for the sales ledger.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers all sales routes.
func registerSaleRoutes(rg *gin.RouterGroup, ss portssvc.SaleSvcFacade) {
	h := newSaleHandler(ss)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.createSale)
	}
}

// listSales godoc
// @Summary List sales
// @Description Lists sales ledger rows, newest first.
// @Tags sales
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
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
// @Summary Record a sale
// @Description Snapshots the product price, checks stock, decrements inventory and appends the sale atomically. Staff or admin.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(*sale))
}
