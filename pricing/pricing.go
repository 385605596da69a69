package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"laundry-service-api/models"
)

var (
	ErrUnknownService = errors.New("unknown service type")
	ErrUnknownItem    = errors.New("item not in pricelist")
)

// Pricelist holds the unit price for every (service, item) pair of the two
// base services. "both" is never stored; it is priced as washing + ironing.
// A Pricelist is immutable once constructed.
type Pricelist struct {
	washing map[models.ItemType]decimal.Decimal
	ironing map[models.ItemType]decimal.Decimal
}

// New builds a Pricelist from the two base tables. Both tables must cover
// the same item set with non-negative prices; anything else is a
// configuration error caught here rather than priced as zero later.
func New(washing, ironing map[models.ItemType]decimal.Decimal) (Pricelist, error) {
	if len(washing) == 0 || len(ironing) == 0 {
		return Pricelist{}, errors.New("pricing: empty price table")
	}
	if len(washing) != len(ironing) {
		return Pricelist{}, errors.New("pricing: washing and ironing tables cover different items")
	}
	for item := range washing {
		if _, ok := ironing[item]; !ok {
			return Pricelist{}, fmt.Errorf("pricing: item %q missing from ironing table", item)
		}
	}
	pl := Pricelist{
		washing: make(map[models.ItemType]decimal.Decimal, len(washing)),
		ironing: make(map[models.ItemType]decimal.Decimal, len(ironing)),
	}
	for item, price := range washing {
		if price.IsNegative() {
			return Pricelist{}, fmt.Errorf("pricing: negative washing price for %q", item)
		}
		pl.washing[item] = price
	}
	for item, price := range ironing {
		if price.IsNegative() {
			return Pricelist{}, fmt.Errorf("pricing: negative ironing price for %q", item)
		}
		pl.ironing[item] = price
	}
	return pl, nil
}

// UnitPrice returns the price of a single item under the given service.
// For ServiceBoth it is the sum of the washing and ironing unit prices.
func (p Pricelist) UnitPrice(service models.ServiceType, item models.ItemType) (decimal.Decimal, error) {
	switch service {
	case models.ServiceWashing:
		return p.lookup(p.washing, item)
	case models.ServiceIroning:
		return p.lookup(p.ironing, item)
	case models.ServiceBoth:
		wash, err := p.lookup(p.washing, item)
		if err != nil {
			return decimal.Zero, err
		}
		iron, err := p.lookup(p.ironing, item)
		if err != nil {
			return decimal.Zero, err
		}
		return wash.Add(iron), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownService, service)
}

// Covers reports whether the pricelist has a price for the item.
func (p Pricelist) Covers(item models.ItemType) bool {
	_, ok := p.washing[item]
	return ok
}

func (p Pricelist) lookup(table map[models.ItemType]decimal.Decimal, item models.ItemType) (decimal.Decimal, error) {
	price, ok := table[item]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	return price, nil
}

// Default returns the seeded production pricelist.
func Default() Pricelist {
	pl, err := New(
		map[models.ItemType]decimal.Decimal{
			models.ItemTshirts:   decimal.NewFromInt(200),
			models.ItemShorts:    decimal.NewFromInt(250),
			models.ItemPants:     decimal.NewFromInt(300),
			models.ItemCaps:      decimal.NewFromInt(150),
			models.ItemSocks:     decimal.NewFromInt(100),
			models.ItemTowels:    decimal.NewFromInt(350),
			models.ItemBedsheets: decimal.NewFromInt(500),
		},
		map[models.ItemType]decimal.Decimal{
			models.ItemTshirts:   decimal.NewFromInt(150),
			models.ItemShorts:    decimal.NewFromInt(200),
			models.ItemPants:     decimal.NewFromInt(250),
			models.ItemCaps:      decimal.NewFromInt(100),
			models.ItemSocks:     decimal.NewFromInt(80),
			models.ItemTowels:    decimal.NewFromInt(200),
			models.ItemBedsheets: decimal.NewFromInt(300),
		},
	)
	if err != nil {
		panic(err) // seeded table is static, an error here is a programming mistake
	}
	return pl
}
