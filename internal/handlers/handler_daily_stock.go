package handlers

import (
	"net/http"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dailyStockHandler handles HTTP requests for the daily stock ledger.
type dailyStockHandler struct {
	dailyStockService portssvc.DailyStockSvcFacade
}

func newDailyStockHandler(ds portssvc.DailyStockSvcFacade) *dailyStockHandler {
	return &dailyStockHandler{dailyStockService: ds}
}

// registerDailyStockRoutes registers all ledger routes.
func registerDailyStockRoutes(rg *gin.RouterGroup, ds portssvc.DailyStockSvcFacade) {
	h := newDailyStockHandler(ds)

	days := rg.Group("/stock-days")
	{
		days.GET("/:date", h.getDay)
		days.POST("/:date", h.initializeDay)
		days.POST("/:date/publish", h.publishDay)
	}
	rg.PATCH("/stock-records/:id", h.updateCell)
}

// getDay godoc
// @Summary Get one ledger day
// @Description Returns the date's status and its rows with derived figures. An uninitialized date has status empty and no rows.
// @Tags daily-stock
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock-days/{date} [get]
func (h *dailyStockHandler) getDay(c *gin.Context) {
	date := c.Param("date")

	status, records, products, err := h.dailyStockService.GetDay(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.DayResponse{
		Date:    date,
		Status:  string(status),
		Records: make([]dto.DailyStockRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, dto.ToDailyStockRecordResponse(rec, products[rec.ProductID]))
	}
	c.JSON(http.StatusOK, resp)
}

// initializeDay godoc
// @Summary Initialize a ledger day
// @Description Creates one draft row per active product with opening stock seeded from live inventory. Staff or admin.
// @Tags daily-stock
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 201 {object} dto.DayResponse
// @Failure 400 {object} ErrorResponse "No active products or bad date"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Day already initialized"
// @Security BearerAuth
// @Router /stock-days/{date} [post]
func (h *dailyStockHandler) initializeDay(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	date := c.Param("date")

	records, err := h.dailyStockService.InitializeDay(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	// Rows come back without product joins; re-read the day for the full view.
	status, fullRecords, products, err := h.dailyStockService.GetDay(c.Request.Context(), date)
	if err != nil {
		status = domain.DayStatusDraft
		fullRecords = records
		products = map[string]domain.Product{}
	}

	resp := dto.DayResponse{
		Date:    date,
		Status:  string(status),
		Records: make([]dto.DailyStockRecordResponse, 0, len(fullRecords)),
	}
	for _, rec := range fullRecords {
		resp.Records = append(resp.Records, dto.ToDailyStockRecordResponse(rec, products[rec.ProductID]))
	}
	c.JSON(http.StatusCreated, resp)
}

// updateCell godoc
// @Summary Edit one draft cell
// @Description Overwrites opening, added or closing stock on a draft row. Published rows are rejected. Staff or admin.
// @Tags daily-stock
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param cell body dto.UpdateCellRequest true "Field and value"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Row is published"
// @Security BearerAuth
// @Router /stock-records/{id} [patch]
func (h *dailyStockHandler) updateCell(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.dailyStockService.UpdateCell(c.Request.Context(), userID, c.Param("id"), domain.StockField(req.Field), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// publishDay godoc
// @Summary Publish a ledger day
// @Description Propagates closing stock into live inventory and locks the date, atomically. Admin only.
// @Tags daily-stock
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Day not initialized or already published"
// @Security BearerAuth
// @Router /stock-days/{date}/publish [post]
func (h *dailyStockHandler) publishDay(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.dailyStockService.PublishDay(c.Request.Context(), userID, c.Param("date")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
