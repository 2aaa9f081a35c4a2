package generator

import (
	"fmt"
	"math/rand"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/types"
)

// Stores produces count store rows with synthetic address, city and phone.
// IDs are left zero; the store assigns them on insert.
func Stores(rng *rand.Rand, count int) []types.Store {
	stores := make([]types.Store, count)
	for i := range stores {
		stores[i] = types.Store{
			Address: fmt.Sprintf("%d %s", 1+rng.Intn(9999), pick(rng, streetNames)),
			City:    pick(rng, cityNames),
			Phone:   randomPhone(rng),
		}
	}
	return stores
}
