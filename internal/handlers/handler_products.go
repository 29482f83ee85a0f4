package handlers

import (
	"net/http"

	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests for the catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers all catalog routes.
func registerProductRoutes(rg *gin.RouterGroup, ps portssvc.ProductSvcFacade) {
	h := newProductHandler(ps)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.POST("", h.createProduct)
		products.PUT("/:id", h.updateProduct)
	}
}

// listProducts godoc
// @Summary List catalog items
// @Tags products
// @Produce json
// @Param active query bool false "Only active products"
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	var (
		products []dto.ProductResponse
		err      error
	)
	if c.Query("active") == "true" {
		ps, e := h.productService.ListActiveProducts(c.Request.Context())
		products, err = dto.ToProductResponseSlice(ps), e
	} else {
		ps, e := h.productService.ListProducts(c.Request.Context())
		products, err = dto.ToProductResponseSlice(ps), e
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// getProduct godoc
// @Summary Get a catalog item
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// createProduct godoc
// @Summary Create a catalog item
// @Description Adds a product together with its inventory row. Staff or admin.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate product name"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// updateProduct godoc
// @Summary Update a catalog item
// @Description Edits product fields; omitted fields are untouched. Staff or admin.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}
