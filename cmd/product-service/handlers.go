package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	prod "github.com/MikeMC777/pedidos-ecom/internal/product"
)

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// listOnlyHandler godoc
// @Summary List products (pagination only, no search)
// @Tags products
// @Produce json
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} product.ListResponse
// @Router /products [get]
func listOnlyHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)
		items, err := repo.List(c.Request.Context(), prod.Query{Limit: limit, Offset: offset})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []prod.Product{}
		}
		c.JSON(http.StatusOK, prod.ListResponse{Items: items, Limit: limit, Offset: offset})
	}
}

// searchHandler godoc
// @Summary Search products by name/description
// @Tags products
// @Produce json
// @Param q query string true "search term (min 2 chars)"
// @Success 200 {object} product.ListResponse
// @Failure 400 {object} product.HTTPError
// @Router /products/search [get]
func searchHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if len(q) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q must have at least 2 characters"})
			return
		}
		limit, offset := pagination(c)
		items, err := repo.List(c.Request.Context(), prod.Query{Q: q, Limit: limit, Offset: offset})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []prod.Product{}
		}
		c.JSON(http.StatusOK, prod.ListResponse{Q: q, Items: items, Limit: limit, Offset: offset})
	}
}

// getProductHandler godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} product.Product
// @Failure 404 {object} product.HTTPError
// @Router /products/{id} [get]
func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body product.CreateProductRequest true "product payload"
// @Success 201 {object} product.Product
// @Failure 400 {object} product.HTTPError
// @Router /products [post]
func createProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.CreateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if in.Name == "" || in.Price == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}
		if in.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}
		if _, err := decimal.NewFromString(in.Price); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}
		p := &prod.Product{
			ID:             uuid.NewString(),
			Name:           in.Name,
			Description:    in.Description,
			Price:          in.Price,
			Stock:          in.Stock,
			Image:          in.Image,
			ImageThumbnail: in.ImageThumbnail,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary Partially update a product (price only when sent)
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param product body product.UpdateProductRequest true "fields to update"
// @Success 200 {object} product.Product
// @Failure 400 {object} product.HTTPError
// @Failure 404 {object} product.HTTPError
// @Router /products/{id} [put]
func updateProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.UpdateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if in.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}
		updatePrice := in.Price != ""
		if updatePrice {
			if _, err := decimal.NewFromString(in.Price); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
				return
			}
		}
		id := c.Param("id")
		p := &prod.Product{
			ID:             id,
			Name:           in.Name,
			Description:    in.Description,
			Price:          in.Price,
			Stock:          in.Stock,
			Image:          in.Image,
			ImageThumbnail: in.ImageThumbnail,
		}
		if err := repo.Update(c.Request.Context(), p, updatePrice); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		out, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// deleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "product id"
// @Success 204
// @Failure 404 {object} product.HTTPError
// @Router /products/{id} [delete]
func deleteProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
