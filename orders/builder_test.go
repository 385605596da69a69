package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-service-api/models"
	"laundry-service-api/pricing"
)

type stubGenerator struct {
	ref string
}

func (s stubGenerator) NextReference() string { return s.ref }

// twoItemPricelist matches the worked scenarios: washing tshirts 200 /
// pants 300, ironing tshirts 150 / pants 250.
func twoItemPricelist(t *testing.T) pricing.Pricelist {
	t.Helper()
	pl, err := pricing.New(
		map[models.ItemType]decimal.Decimal{
			models.ItemTshirts: decimal.NewFromInt(200),
			models.ItemPants:   decimal.NewFromInt(300),
		},
		map[models.ItemType]decimal.Decimal{
			models.ItemTshirts: decimal.NewFromInt(150),
			models.ItemPants:   decimal.NewFromInt(250),
		},
	)
	require.NoError(t, err)
	return pl
}

func TestBuildWashingScenario(t *testing.T) {
	order, err := Build(twoItemPricelist(t), stubGenerator{ref: "MLTEST0001"}, BuildRequest{
		UserID:      7,
		ServiceType: "washing",
		Quantities:  map[models.ItemType]int{models.ItemTshirts: 2, models.ItemPants: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, order.TotalItems)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(700)), "total = %s", order.TotalPrice)
	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, "MLTEST0001", order.OrderNumber)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Nil(t, order.CompletedAt)
	assert.Equal(t, 2, order.Tshirts)
	assert.Equal(t, 1, order.Pants)
}

func TestBuildBothScenario(t *testing.T) {
	// tshirts 2×(200+150)=700, pants 1×(300+250)=550 → 1250
	order, err := Build(twoItemPricelist(t), stubGenerator{ref: "MLTEST0002"}, BuildRequest{
		ServiceType: "both",
		Quantities:  map[models.ItemType]int{models.ItemTshirts: 2, models.ItemPants: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, order.TotalItems)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(1250)), "total = %s", order.TotalPrice)
}

func TestBuildTotalsMatchCounters(t *testing.T) {
	pl := pricing.Default()
	order, err := Build(pl, stubGenerator{ref: "MLTEST0003"}, BuildRequest{
		ServiceType: "ironing",
		Quantities: map[models.ItemType]int{
			models.ItemSocks:     4,
			models.ItemTowels:    1,
			models.ItemBedsheets: 2,
		},
	})
	require.NoError(t, err)

	sum := 0
	expected := decimal.Zero
	for _, item := range models.AllItems() {
		qty := order.Quantity(item)
		sum += qty
		unit, uerr := pl.UnitPrice(models.ServiceIroning, item)
		require.NoError(t, uerr)
		expected = expected.Add(unit.Mul(decimal.NewFromInt(int64(qty))))
	}
	assert.Equal(t, order.TotalItems, sum)
	assert.True(t, order.TotalPrice.Equal(expected), "total = %s want %s", order.TotalPrice, expected)
}

func TestBuildEmptyOrder(t *testing.T) {
	for _, service := range []string{"washing", "ironing", "both"} {
		_, err := Build(twoItemPricelist(t), stubGenerator{}, BuildRequest{
			ServiceType: service,
			Quantities:  nil,
		})
		assert.ErrorIs(t, err, ErrEmptyOrder, "service %s", service)

		_, err = Build(twoItemPricelist(t), stubGenerator{}, BuildRequest{
			ServiceType: service,
			Quantities:  map[models.ItemType]int{models.ItemTshirts: 0, models.ItemPants: 0},
		})
		assert.ErrorIs(t, err, ErrEmptyOrder, "service %s all-zero", service)
	}
}

func TestBuildInvalidServiceType(t *testing.T) {
	_, err := Build(twoItemPricelist(t), stubGenerator{}, BuildRequest{
		ServiceType: "dry_cleaning",
		Quantities:  map[models.ItemType]int{models.ItemTshirts: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidServiceType)
}

func TestBuildNegativeQuantity(t *testing.T) {
	_, err := Build(twoItemPricelist(t), stubGenerator{}, BuildRequest{
		ServiceType: "washing",
		Quantities:  map[models.ItemType]int{models.ItemTshirts: -1},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestBuildUnknownItem(t *testing.T) {
	_, err := Build(twoItemPricelist(t), stubGenerator{}, BuildRequest{
		ServiceType: "washing",
		Quantities:  map[models.ItemType]int{models.ItemType("jackets"): 1},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestBuildPickupOptionDefaults(t *testing.T) {
	cases := map[string]models.PickupOption{
		"pickup":   models.PickupSelf,
		"delivery": models.PickupDelivery,
		"":         models.PickupSelf,
		"dropoff":  models.PickupSelf,
	}
	for raw, want := range cases {
		order, err := Build(twoItemPricelist(t), stubGenerator{ref: "MLTEST0004"}, BuildRequest{
			ServiceType:  "washing",
			PickupOption: raw,
			Quantities:   map[models.ItemType]int{models.ItemTshirts: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, want, order.PickupOption, "pickup option %q", raw)
	}
}

func TestBuildTimestamps(t *testing.T) {
	before := time.Now()
	order, err := Build(twoItemPricelist(t), stubGenerator{ref: "MLTEST0005"}, BuildRequest{
		ServiceType: "washing",
		Quantities:  map[models.ItemType]int{models.ItemPants: 1},
	})
	require.NoError(t, err)
	assert.False(t, order.CreatedAt.Before(before))
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
}
