package generator

import (
	"math"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/types"
)

// avgItemsPerOrder is the mean of the rounded Gaussian used for basket sizes.
const avgItemsPerOrder = 3

// Orders produces count order headers, each referencing a uniformly chosen
// customer and store and stamped within the current year. Totals are zero
// placeholders; the pipeline patches them once the order's items exist.
func Orders(rng *rand.Rand, count int, customerIDs, storeIDs []int64) []types.Order {
	orders := make([]types.Order, count)
	for i := range orders {
		orders[i] = types.Order{
			CustomerID: customerIDs[rng.Intn(len(customerIDs))],
			StoreID:    storeIDs[rng.Intn(len(storeIDs))],
			Timestamp:  timestampThisYear(rng),
			Total:      decimal.Zero,
		}
	}
	return orders
}

// OrderItems generates the line items for one persisted order. The item count
// follows a rounded Gaussian (mean 3, stddev 1) floored at 1, quantities are
// uniform in [1,3], and the price is copied from the in-memory price map at
// generation time. The returned total is the sum of per-line subtotals, each
// rounded to 2 places before summing.
func OrderItems(rng *rand.Rand, orderID int64, itemIDs []int64, prices map[int64]decimal.Decimal) ([]types.OrderItem, decimal.Decimal) {
	numItems := int(math.Round(rng.NormFloat64() + avgItemsPerOrder))
	if numItems < 1 {
		numItems = 1
	}

	items := make([]types.OrderItem, numItems)
	total := decimal.Zero
	for i := range items {
		itemID := itemIDs[rng.Intn(len(itemIDs))]
		quantity := 1 + rng.Intn(3)
		price := prices[itemID]
		subtotal := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		total = total.Add(subtotal)

		items[i] = types.OrderItem{
			OrderID:      orderID,
			ItemID:       itemID,
			Quantity:     quantity,
			PricePerItem: price,
		}
	}
	return items, total.Round(2)
}
