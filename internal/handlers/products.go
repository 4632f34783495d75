package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, products"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/products [get]
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.services.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "products_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// @Summary      Create or replace product
// @Description  alpha and correction default to 1 when omitted; k defaults to 0.045 when zero. q10_factor > 0 selects the Q10 rate law.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        key   path      string          true  "Product key"
// @Param        body  body      productRequest  true  "Product parameters"
// @Success      200   {object}  models.Product
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/products/{key} [put]
func (h *Handler) putProduct(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	p, err := h.services.Catalog.UpsertProduct(c.Request.Context(), req.toModel(key))
	if err != nil {
		h.respondServiceError(c, "product_upsert_failed", err, "key", key)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete product
// @Description  Fails with 409 while a batch still uses the product.
// @Tags         products
// @Produce      json
// @Param        key  path      string  true  "Product key"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/products/{key} [delete]
func (h *Handler) deleteProduct(c *gin.Context) {
	key := c.Param("key")
	if err := h.services.Catalog.DeleteProduct(c.Request.Context(), key); err != nil {
		h.respondServiceError(c, "product_delete_failed", err, "key", key)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted, "key": key})
}
