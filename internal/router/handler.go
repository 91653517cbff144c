package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minishop/go-api/pkg/global"
	"github.com/minishop/go-api/pkg/models"
	"github.com/minishop/go-api/pkg/redis"
	"github.com/minishop/go-api/pkg/store"
)

func HealthCheck(c *gin.Context) {
	if err := db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Store connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"status": "OK",
		"store":  db.Name(),
	}))
}

// GetAllProducts serves the catalog, cache-aside through Redis. Redis being
// down is never a user-visible failure.
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if products, err := redis.GetCatalogFromCache(ctx); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := db.ListProducts(ctx)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch products", nil))
		return
	}

	if cacheErr := redis.CacheCatalog(ctx, products); cacheErr != nil {
		log.Printf("Warning: Failed to cache catalog in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, products)
}

func GetProductByID(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if product, err := redis.GetProductFromCache(ctx, id); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(product))
		return
	}

	product, err := db.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching product: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	if cacheErr := redis.CacheSingleProduct(ctx, product); cacheErr != nil {
		log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

func CreateNewProducts(c *gin.Context) {
	var req []models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}
	if len(req) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No products provided", []global.ValidationError{
			{Field: "products", Message: "At least one product is required", Code: "empty_array"},
		}))
		return
	}

	products := make([]*models.Product, len(req))
	ids := make([]string, len(req))
	for i, productReq := range req {
		products[i] = productReq.ToProduct()
		ids[i] = products[i].ID
	}

	ctx := c.Request.Context()
	if err := db.CreateProducts(ctx, products); err != nil {
		log.Printf("Error creating products: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create products", nil))
		return
	}

	if cacheErr := redis.InvalidateCatalog(ctx, ids); cacheErr != nil {
		log.Printf("Warning: Failed to invalidate catalog cache: %v", cacheErr)
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"products": products,
		"count":    len(products),
	}))
}

// Cart handlers return the bare {items, total} document the storefront
// consumes, rather than the API envelope.

func GetCart(c *gin.Context) {
	cart, err := db.GetCart(c.Request.Context(), c.GetString("sessionID"))
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch cart", nil))
		return
	}
	c.JSON(http.StatusOK, cart)
}

func AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	product, err := db.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "productId", Message: "No product exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching product: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add item to cart", nil))
		return
	}

	sessionID := c.GetString("sessionID")
	cart, err := db.GetCart(ctx, sessionID)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add item to cart", nil))
		return
	}

	cart.AddProduct(product, req.Qty)

	if err := db.SaveCart(ctx, cart); err != nil {
		log.Printf("Error saving cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add item to cart", nil))
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateCartItem sets the absolute quantity of a line item, mutating the
// stored line directly. A qty of zero or below removes the line.
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "qty", Message: "qty must be an integer", Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	sessionID := c.GetString("sessionID")
	cart, err := db.GetCart(ctx, sessionID)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart item", nil))
		return
	}

	if found := cart.SetQuantity(c.Param("id"), req.Qty); !found {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Cart item not found", []global.ValidationError{
			{Field: "id", Message: "No cart item exists with this ID", Code: "not_found"},
		}))
		return
	}

	if err := db.SaveCart(ctx, cart); err != nil {
		log.Printf("Error saving cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart item", nil))
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart deletes a line item. Removing an unknown ID still returns the
// cart unchanged; absence is not an error here.
func RemoveFromCart(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.GetString("sessionID")
	cart, err := db.GetCart(ctx, sessionID)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to remove item from cart", nil))
		return
	}

	cart.RemoveItem(c.Param("id"))

	if err := db.SaveCart(ctx, cart); err != nil {
		log.Printf("Error saving cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to remove item from cart", nil))
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Checkout validates the buyer, re-reads the authoritative server-side cart,
// and rejects the request when the client's copy has diverged from it. On
// success the order is persisted and the live cart cleared.
func Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	if err := models.ValidateBuyer(req.BuyerName, req.BuyerEmail); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse(err.Error(), []global.ValidationError{
			{Field: "buyer", Message: err.Error(), Code: "invalid_input"},
		}))
		return
	}

	if len(req.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Cart is empty", []global.ValidationError{
			{Field: "cartItems", Message: "Cart is empty", Code: "empty_cart"},
		}))
		return
	}

	ctx := c.Request.Context()
	sessionID := c.GetString("sessionID")
	cart, err := db.GetCart(ctx, sessionID)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Checkout failed", nil))
		return
	}

	if cart.IsEmpty() {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Cart is empty", []global.ValidationError{
			{Field: "cartItems", Message: "Cart is empty", Code: "empty_cart"},
		}))
		return
	}

	if !cart.Matches(req.CartItems) {
		c.JSON(http.StatusConflict, global.ErrorResponse("Cart contents have changed", []global.ValidationError{
			{Field: "cartItems", Message: "Submitted items no longer match the cart; refresh and try again", Code: "cart_conflict"},
		}))
		return
	}

	// Pricing comes from the verified server-side items, not the client copy.
	order, err := models.NewOrder(req.BuyerName, req.BuyerEmail, cart.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse(err.Error(), nil))
		return
	}

	if err := db.CreateOrder(ctx, order); err != nil {
		log.Printf("Error saving order: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Checkout failed", nil))
		return
	}

	if err := db.ClearCart(ctx, sessionID); err != nil {
		// The order is already persisted; surface the receipt anyway.
		log.Printf("Warning: Failed to clear cart after checkout: %v", err)
	}

	c.JSON(http.StatusOK, models.CheckoutResponse{
		Success: true,
		Receipt: order.BuildReceipt(),
	})
}

func GetAllOrders(c *gin.Context) {
	orders, err := db.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(orders))
}

func GetSalesSummary(c *gin.Context) {
	summary, err := db.SalesSummary(c.Request.Context())
	if err != nil {
		log.Printf("Error computing sales summary: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to compute sales summary", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(summary))
}
