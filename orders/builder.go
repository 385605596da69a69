package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"laundry-service-api/models"
	"laundry-service-api/orderref"
	"laundry-service-api/pricing"
)

// Errors returned by the order builder.
var (
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrEmptyOrder         = errors.New("order has no items")
)

// BuildRequest is the raw intake for a new order. Quantities may omit any
// item type; missing items count as zero.
type BuildRequest struct {
	UserID       uint
	ServiceType  string
	PickupOption string
	Quantities   map[models.ItemType]int
}

// Build validates the request and returns a fully priced order ready for
// persistence. Persistence is the caller's job; Build has no side effects.
//
// Validation order: service type, quantities, then the at-least-one-item
// rule. An unrecognized pickup option falls back to "pickup" rather than
// erroring, matching the permissive intake of the order form.
func Build(pl pricing.Pricelist, gen orderref.Generator, req BuildRequest) (*models.Order, error) {
	service := models.ServiceType(req.ServiceType)
	switch service {
	case models.ServiceWashing, models.ServiceIroning, models.ServiceBoth:
	default:
		return nil, fmt.Errorf("%w: %q (must be washing, ironing or both)", ErrInvalidServiceType, req.ServiceType)
	}

	pickup := models.PickupOption(req.PickupOption)
	if pickup != models.PickupSelf && pickup != models.PickupDelivery {
		pickup = models.PickupSelf
	}

	order := &models.Order{
		UserID:       req.UserID,
		ServiceType:  service,
		PickupOption: pickup,
		Status:       models.StatusPending,
	}

	totalItems := 0
	totalPrice := decimal.Zero
	for item, qty := range req.Quantities {
		if !pl.Covers(item) {
			return nil, fmt.Errorf("%w: unknown item %q", ErrInvalidQuantity, item)
		}
		if qty < 0 {
			return nil, fmt.Errorf("%w: %s = %d", ErrInvalidQuantity, item, qty)
		}
		if qty == 0 {
			continue
		}
		unit, err := pl.UnitPrice(service, item)
		if err != nil {
			return nil, err
		}
		order.SetQuantity(item, qty)
		totalItems += qty
		totalPrice = totalPrice.Add(unit.Mul(decimal.NewFromInt(int64(qty))))
	}

	if totalItems == 0 {
		return nil, ErrEmptyOrder
	}

	now := time.Now()
	order.TotalItems = totalItems
	order.TotalPrice = totalPrice
	order.OrderNumber = gen.NextReference()
	order.CreatedAt = now
	order.UpdatedAt = now
	return order, nil
}
