package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType selects which price tables apply to an order.
type ServiceType string

const (
	ServiceWashing ServiceType = "washing"
	ServiceIroning ServiceType = "ironing"
	ServiceBoth    ServiceType = "both"
)

// PickupOption says whether the customer drops off or wants delivery.
type PickupOption string

const (
	PickupSelf     PickupOption = "pickup"
	PickupDelivery PickupOption = "delivery"
)

// OrderStatus represents all possible states of a laundry order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
)

// ItemType names a garment counter on an order.
type ItemType string

const (
	ItemTshirts   ItemType = "tshirts"
	ItemShorts    ItemType = "shorts"
	ItemPants     ItemType = "pants"
	ItemCaps      ItemType = "caps"
	ItemSocks     ItemType = "socks"
	ItemTowels    ItemType = "towels"
	ItemBedsheets ItemType = "bedsheets"
)

// AllItems lists every garment counter an order carries, in display order.
func AllItems() []ItemType {
	return []ItemType{ItemTshirts, ItemShorts, ItemPants, ItemCaps, ItemSocks, ItemTowels, ItemBedsheets}
}

type Order struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OrderNumber  string          `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID       uint            `json:"user_id" gorm:"not null"`
	User         User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ServiceType  ServiceType     `json:"service_type" gorm:"not null"`
	PickupOption PickupOption    `json:"pickup_option" gorm:"not null;default:'pickup'"`
	Status       OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	TotalItems   int             `json:"total_items" gorm:"not null;default:0"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Tshirts      int             `json:"tshirts" gorm:"not null;default:0"`
	Shorts       int             `json:"shorts" gorm:"not null;default:0"`
	Pants        int             `json:"pants" gorm:"not null;default:0"`
	Caps         int             `json:"caps" gorm:"not null;default:0"`
	Socks        int             `json:"socks" gorm:"not null;default:0"`
	Towels       int             `json:"towels" gorm:"not null;default:0"`
	Bedsheets    int             `json:"bedsheets" gorm:"not null;default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
}

// Quantity returns the counter for one item type.
func (o *Order) Quantity(item ItemType) int {
	switch item {
	case ItemTshirts:
		return o.Tshirts
	case ItemShorts:
		return o.Shorts
	case ItemPants:
		return o.Pants
	case ItemCaps:
		return o.Caps
	case ItemSocks:
		return o.Socks
	case ItemTowels:
		return o.Towels
	case ItemBedsheets:
		return o.Bedsheets
	}
	return 0
}

// SetQuantity sets the counter for one item type. Unknown items are ignored;
// the order builder rejects them before an order is ever constructed.
func (o *Order) SetQuantity(item ItemType, qty int) {
	switch item {
	case ItemTshirts:
		o.Tshirts = qty
	case ItemShorts:
		o.Shorts = qty
	case ItemPants:
		o.Pants = qty
	case ItemCaps:
		o.Caps = qty
	case ItemSocks:
		o.Socks = qty
	case ItemTowels:
		o.Towels = qty
	case ItemBedsheets:
		o.Bedsheets = qty
	}
}

// ItemQuantities returns the non-zero counters as a map.
func (o *Order) ItemQuantities() map[ItemType]int {
	out := map[ItemType]int{}
	for _, item := range AllItems() {
		if q := o.Quantity(item); q > 0 {
			out[item] = q
		}
	}
	return out
}
