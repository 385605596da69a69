package store

import (
	"gorm.io/gorm"

	"laundry-service-api/models"
)

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	TotalOrders      int64 `json:"total_orders"`
	PendingOrders    int64 `json:"pending_orders"`
	InProgressOrders int64 `json:"in_progress_orders"`
	CompletedOrders  int64 `json:"completed_orders"`
	TotalCustomers   int64 `json:"total_customers"`
}

// CountsByStatus counts all orders grouped by status. Every status appears
// in the result, zero included.
func CountsByStatus(db *gorm.DB) (map[models.OrderStatus]int64, error) {
	counts := map[models.OrderStatus]int64{
		models.StatusPending:    0,
		models.StatusInProgress: 0,
		models.StatusCompleted:  0,
	}
	var rows []struct {
		Status models.OrderStatus
		Count  int64
	}
	err := db.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// RecentOrders returns the newest orders with their owners, bounded by limit.
func RecentOrders(db *gorm.DB, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// Stats assembles the admin dashboard aggregate.
func Stats(db *gorm.DB) (DashboardStats, error) {
	counts, err := CountsByStatus(db)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{
		PendingOrders:    counts[models.StatusPending],
		InProgressOrders: counts[models.StatusInProgress],
		CompletedOrders:  counts[models.StatusCompleted],
	}
	stats.TotalOrders = stats.PendingOrders + stats.InProgressOrders + stats.CompletedOrders
	if err := db.Model(&models.User{}).Where("is_admin = ?", false).Count(&stats.TotalCustomers).Error; err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
