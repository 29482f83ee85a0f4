package handlers

import (
	"net/http"

	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all report routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/sales", h.getSalesReport)
		reports.GET("/stock", h.getStockReport)
	}
}

// getDashboard godoc
// @Summary Get the dashboard report
// @Description Aggregates revenue, rankings, payment split, movers and margins. Admin only.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardReport
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getSalesReport godoc
// @Summary Get the sales report
// @Description Totals and full ledger listing with payment breakdown. Admin only.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.SalesReport
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportingHandler) getSalesReport(c *gin.Context) {
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

// getStockReport godoc
// @Summary Get the stock report
// @Description Every product joined with its inventory row. Admin only.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.StockReport
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/stock [get]
func (h *reportingHandler) getStockReport(c *gin.Context) {
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
