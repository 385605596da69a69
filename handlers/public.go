package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-service-api/config"
	"laundry-service-api/models"
	"laundry-service-api/statemachine"
	"laundry-service-api/store"
)

// TrackOrder looks an order up by its customer-facing reference (public,
// the reference itself is the capability)
func TrackOrder(c *gin.Context) {
	reference := c.Param("number")
	order, err := store.FindByReference(config.DB, reference)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"items": order.ItemQuantities(),
		"customer": gin.H{
			"username": order.User.Username,
			"phone":    order.User.Phone,
		},
	})
}

// GetPricing returns the full service catalog with unit prices per item
func GetPricing(c *gin.Context) {
	services := []models.ServiceType{models.ServiceWashing, models.ServiceIroning, models.ServiceBoth}
	catalog := gin.H{}
	for _, service := range services {
		table := gin.H{}
		for _, item := range models.AllItems() {
			price, err := priceList.UnitPrice(service, item)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Pricing table misconfigured"})
				return
			}
			table[string(item)] = price
		}
		catalog[string(service)] = table
	}
	c.JSON(http.StatusOK, gin.H{
		"items":   models.AllItems(),
		"pricing": catalog,
	})
}

// GetLifecycleInfo returns the order lifecycle for informational purposes
func GetLifecycleInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"lifecycle":       info,
		"terminal_states": []models.OrderStatus{models.StatusCompleted},
		"description":     "Laundry Order Lifecycle",
	})
}
