package generator

import (
	"math/rand"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/types"
)

// emailRetryBudget bounds how many times a duplicate email or phone is
// resampled within a batch. Uniqueness is best effort; beyond the budget the
// duplicate is tolerated and the schema's unique constraints, where present,
// are the real backstop.
const emailRetryBudget = 5

// Customers produces count customer rows with best-effort unique emails and
// phones within the batch.
func Customers(rng *rand.Rand, count int) []types.Customer {
	customers := make([]types.Customer, count)
	emails := make(map[string]bool, count)
	phones := make(map[string]bool, count)

	for i := range customers {
		first := pick(rng, firstNames)
		last := pick(rng, lastNames)

		var email string
		for attempt := 0; ; attempt++ {
			email = randomEmail(rng, first, last)
			if !emails[email] || attempt >= emailRetryBudget {
				break
			}
		}
		emails[email] = true

		var phone string
		for attempt := 0; ; attempt++ {
			phone = randomPhone(rng)
			if !phones[phone] || attempt >= emailRetryBudget {
				break
			}
		}
		phones[phone] = true

		customers[i] = types.Customer{
			FirstName: first,
			LastName:  last,
			Email:     email,
			Phone:     phone,
		}
	}
	return customers
}
