package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/service"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/store"
)

const (
	AllProductsCacheKey = "all_products"
	ProductCacheTTL     = 5 * time.Minute
)

// ProductController translates HTTP requests into ProductService calls.
// The redis client is optional; when nil, caching is disabled.
type ProductController struct {
	svc   *service.ProductService
	cache *redis.Client
}

func NewProductController(svc *service.ProductService, cache *redis.Client) *ProductController {
	return &ProductController{svc: svc, cache: cache}
}

// GetProducts godoc
// @Summary Get all products
// @Description Get a list of all products, newest first, with caching.
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/products [get]
func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Try to get from cache first
	if pc.cache != nil {
		cacheData, err := pc.cache.Get(ctx, AllProductsCacheKey).Result()
		if err == nil {
			var products []models.Product
			if json.Unmarshal([]byte(cacheData), &products) == nil {
				c.JSON(http.StatusOK, products)
				return
			}
		}
	}

	// 2. If cache miss, get from the store
	products, err := pc.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch products"})
		return
	}

	// 3. Set to cache for next time (in background)
	if pc.cache != nil {
		if productsJSON, err := json.Marshal(products); err == nil {
			go pc.cache.Set(context.Background(), AllProductsCacheKey, productsJSON, ProductCacheTTL)
		}
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID godoc
// @Summary Get a single product by its ID
// @Description Get detailed information for a specific product.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := parseID(c)
	if !ok {
		return
	}
	productCacheKey := "product:" + c.Param("id")

	// 1. Try to get from cache
	if pc.cache != nil {
		cachedProduct, err := pc.cache.Get(ctx, productCacheKey).Result()
		if err == nil {
			var product models.Product
			if json.Unmarshal([]byte(cachedProduct), &product) == nil {
				c.JSON(http.StatusOK, product)
				return
			}
		}
	}

	// 2. If cache miss, get from the store
	product, err := pc.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product with ID %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch product"})
		return
	}

	// 3. Set to cache
	if pc.cache != nil {
		if productJSON, err := json.Marshal(product); err == nil {
			go pc.cache.Set(context.Background(), productCacheKey, productJSON, ProductCacheTTL)
		}
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Validates and stores a new product, then notifies listeners.
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductInput true "Product payload"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]interface{}
// @Router /api/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	product, err := pc.svc.Create(c.Request.Context(), in)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": verr.Violations})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create product"})
		return
	}

	pc.invalidate("")

	c.Header("Location", fmt.Sprintf("/api/products/%d", product.ID))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Replaces a product's mutable fields by its ID.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.ProductInput true "Product payload"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	if _, err := pc.svc.Replace(c.Request.Context(), id, in); err != nil {
		switch {
		case errors.Is(err, service.ErrIDMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "ID mismatch"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product with ID %d not found", id)})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Concurrency conflict updating product"})
		default:
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": verr.Violations})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update product"})
		}
		return
	}

	pc.invalidate(c.Param("id"))

	c.Status(http.StatusNoContent)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deletes a product by its ID and notifies listeners.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := pc.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Product with ID %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete product"})
		return
	}

	pc.invalidate(c.Param("id"))

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	uid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return 0, false
	}
	return uint(uid), true
}

// invalidate drops the cached list and single-product entries after a
// mutation, in the background.
func (pc *ProductController) invalidate(id string) {
	if pc.cache == nil {
		return
	}
	go pc.cache.Del(context.Background(), AllProductsCacheKey)
	if id != "" {
		go pc.cache.Del(context.Background(), "product:"+id)
	}
}
