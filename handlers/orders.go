package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-service-api/config"
	"laundry-service-api/middleware"
	"laundry-service-api/models"
	"laundry-service-api/orderref"
	"laundry-service-api/orders"
	"laundry-service-api/pricing"
	"laundry-service-api/store"
)

// Pricelist and reference generator used by the order intake. Package
// variables so handler tests can swap in alternates.
var (
	priceList                    = pricing.Default()
	refGen    orderref.Generator = orderref.NewGenerator()
)

type CreateOrderRequest struct {
	ServiceType  string         `json:"service_type" binding:"required"`
	PickupOption string         `json:"pickup_option"`
	Quantities   map[string]int `json:"quantities" binding:"required"`
}

// CreateOrder builds, prices and persists a new laundry order for the
// authenticated customer.
func CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantities := make(map[models.ItemType]int, len(req.Quantities))
	for item, qty := range req.Quantities {
		quantities[models.ItemType(item)] = qty
	}

	order, err := orders.Build(priceList, refGen, orders.BuildRequest{
		UserID:       userID,
		ServiceType:  req.ServiceType,
		PickupOption: req.PickupOption,
		Quantities:   quantities,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.CreateOrder(config.DB, order, refGen); err != nil {
		if errors.Is(err, store.ErrPersistenceExhausted) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not assign an order number, please retry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order created successfully",
		"order_number": order.OrderNumber,
		"order":        order,
	})
}

// GetMyOrders returns all orders for the logged-in customer, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := store.OrdersForUser(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
}
