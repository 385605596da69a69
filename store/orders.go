package store

import (
	"errors"

	"gorm.io/gorm"

	"laundry-service-api/models"
	"laundry-service-api/orderref"
)

const maxReferenceRetries = 3

// CreateOrder inserts a freshly built order. If the reference collides with
// an existing one the insert is retried with a newly generated reference,
// up to maxReferenceRetries times, then fails with ErrPersistenceExhausted.
func CreateOrder(db *gorm.DB, order *models.Order, gen orderref.Generator) error {
	for attempt := 0; attempt < maxReferenceRetries; attempt++ {
		err := insertOrder(db, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrDuplicateReference) {
			return err
		}
		order.ID = 0
		order.OrderNumber = gen.NextReference()
	}
	return ErrPersistenceExhausted
}

func insertOrder(db *gorm.DB, order *models.Order) error {
	if err := db.Create(order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReference
		}
		return err
	}
	return nil
}

// UpdateOrderStatus persists the status fields of an order the status
// machine just mutated. Single-row atomic write scoped by order ID; the
// immutable fields (items, price, reference) are never touched.
func UpdateOrderStatus(db *gorm.DB, order *models.Order) error {
	return db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":       order.Status,
			"updated_at":   order.UpdatedAt,
			"completed_at": order.CompletedAt,
		}).Error
}

// OrderByID fetches an order by primary key.
func OrderByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByReference fetches an order by its customer-facing reference,
// including the owning user for the tracking page.
func FindByReference(db *gorm.DB, reference string) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("User").Where("order_number = ?", reference).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// OrdersForUser returns all orders owned by a user, newest first.
func OrdersForUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// AllOrders returns every order with its owner, newest first, optionally
// filtered by status.
func AllOrders(db *gorm.DB, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	query := db.Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}
