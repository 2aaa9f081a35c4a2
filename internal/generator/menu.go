package generator

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/types"
)

// MenuItems produces count menu items. The category is drawn uniformly; the
// name composes a category-specific base with a category-specific size. Pizza
// prices carry a surcharge of 3 per size rank on top of the base range.
func MenuItems(rng *rand.Rand, count int) []types.MenuItem {
	items := make([]types.MenuItem, count)
	for i := range items {
		category := pick(rng, types.Categories)

		var name, size string
		var price decimal.Decimal
		switch category {
		case types.CategoryPizza:
			base := pick(rng, pizzaNames)
			rank := rng.Intn(len(pizzaSizes))
			size = truncate(pizzaSizes[rank], maxFieldWidth)
			name = fmt.Sprintf("%s %s Pizza", size, base)
			price = uniformDecimal(rng, 8, 25).Add(decimal.NewFromInt(int64(rank * 3)))
		case types.CategorySide:
			base := pick(rng, sideNames)
			size = truncate(pick(rng, sideSizes), maxFieldWidth)
			name = fmt.Sprintf("%s (%s)", base, size)
			price = uniformDecimal(rng, 3, 12)
		default: // Drink
			base := pick(rng, drinkNames)
			size = truncate(pick(rng, drinkSizes), maxFieldWidth)
			name = fmt.Sprintf("%s %s", base, size)
			price = uniformDecimal(rng, 1.5, 5.5)
		}

		items[i] = types.MenuItem{
			Name:     name,
			Category: category,
			Size:     size,
			Price:    price.Round(2),
		}
	}
	return items
}

// ItemIngredients attaches ingredients to every menu item. The category used
// to size the attachment is drawn fresh rather than taken from the item, so a
// drink can end up with a pizza-sized ingredient list. Ingredients are sampled
// without replacement per item and each gets a required quantity in
// (0.05, 2.0].
func ItemIngredients(rng *rand.Rand, itemIDs, ingredientIDs []int64) []types.MenuItemIngredient {
	var mappings []types.MenuItemIngredient
	for _, itemID := range itemIDs {
		var numIngredients int
		switch pick(rng, types.Categories) {
		case types.CategoryPizza:
			numIngredients = 3 + rng.Intn(6) // 3-8
		case types.CategorySide:
			numIngredients = 2 + rng.Intn(4) // 2-5
		default:
			numIngredients = 1 + rng.Intn(2) // 1-2
		}
		if numIngredients > len(ingredientIDs) {
			numIngredients = len(ingredientIDs)
		}

		for _, ingIdx := range rng.Perm(len(ingredientIDs))[:numIngredients] {
			mappings = append(mappings, types.MenuItemIngredient{
				ItemID:       itemID,
				IngredientID: ingredientIDs[ingIdx],
				Quantity:     uniformDecimal(rng, 0.05, 2.0),
			})
		}
	}
	return mappings
}
