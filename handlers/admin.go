package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"laundry-service-api/config"
	"laundry-service-api/models"
	"laundry-service-api/statemachine"
	"laundry-service-api/store"
)

// AdminStats returns the dashboard aggregate: order counts by status,
// customer count and the most recent orders — admin only
func AdminStats(c *gin.Context) {
	stats, err := store.Stats(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	recent, err := store.RecentOrders(config.DB, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recent orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":         stats,
		"recent_orders": recent,
	})
}

// AdminGetAllOrders returns all orders with their owners — admin only
func AdminGetAllOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	list, err := store.AllOrders(config.DB, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
}

// AdminGetAllUsers returns all customer accounts, newest first — admin only
func AdminGetAllUsers(c *gin.Context) {
	users, err := store.Customers(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus moves an order along its lifecycle — admin only
func AdminUpdateOrderStatus(c *gin.Context) {
	order, ok := orderFromParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prevStatus := order.Status
	if err := statemachine.Apply(order, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    prevStatus,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(prevStatus),
		})
		return
	}

	if err := store.UpdateOrderStatus(config.DB, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  order.Status,
	})
}

type ForceOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Reason string             `json:"reason"`
}

// AdminForceOrderStatus lets an admin override the lifecycle guard, for
// correcting mistakes (e.g. an order completed by accident)
func AdminForceOrderStatus(c *gin.Context) {
	order, ok := orderFromParam(c)
	if !ok {
		return
	}

	var req ForceOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Status {
	case models.StatusPending, models.StatusInProgress, models.StatusCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(req.Status)})
		return
	}

	prevStatus := order.Status
	statemachine.Force(order, req.Status)

	if err := store.UpdateOrderStatus(config.DB, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status force-updated by admin",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"new_status":      order.Status,
		"reason":          req.Reason,
	})
}

func orderFromParam(c *gin.Context) (*models.Order, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return nil, false
	}
	order, err := store.OrderByID(config.DB, uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return nil, false
	}
	return order, true
}
