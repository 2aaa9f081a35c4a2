package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/types"
)

// ErrPoolExhausted is returned when more uniquely-named ingredients are
// requested than the fixed name pool supports.
var ErrPoolExhausted = errors.New("ingredient name pool exhausted")

// IngredientPoolSize is the number of distinct ingredient names available.
func IngredientPoolSize() int {
	return len(ingredientNamePool)
}

// ValidateIngredientCount reports whether the pool can supply count distinct
// names. Callers check this up front so the error surfaces before any
// insertion is attempted.
func ValidateIngredientCount(count int) error {
	if count > len(ingredientNamePool) {
		return fmt.Errorf("%w: requested %d names from a pool of %d",
			ErrPoolExhausted, count, len(ingredientNamePool))
	}
	return nil
}

// Ingredients draws count distinct names from the fixed pool without
// replacement and assigns each a uniform stock quantity in [5.0, 200.0] and a
// unit label.
func Ingredients(rng *rand.Rand, count int) ([]types.Ingredient, error) {
	if err := ValidateIngredientCount(count); err != nil {
		return nil, err
	}

	ingredients := make([]types.Ingredient, count)
	for i, poolIdx := range rng.Perm(len(ingredientNamePool))[:count] {
		ingredients[i] = types.Ingredient{
			Name:  ingredientNamePool[poolIdx],
			Stock: uniformDecimal(rng, 5.0, 200.0),
			Unit:  truncate(pick(rng, ingredientUnits), maxFieldWidth),
		}
	}
	return ingredients, nil
}
