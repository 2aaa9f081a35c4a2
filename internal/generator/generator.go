// Package generator produces in-memory candidate rows for each entity type.
// Every generator is a pure function of its parameters and an explicit
// *rand.Rand, so a fixed seed reproduces the same dataset. No generator
// performs I/O; persistence and id assignment belong to the pipeline.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxFieldWidth is the storage width of phone, size and unit columns.
const maxFieldWidth = 20

// truncate trims a value to the maximum field width so generated strings
// always satisfy the storage constraint.
func truncate(value string, length int) string {
	if len(value) > length {
		return value[:length]
	}
	return value
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// uniformDecimal draws a uniform value in [min, max) rounded to 2 places.
func uniformDecimal(rng *rand.Rand, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + rng.Float64()*(max-min)).Round(2)
}

func randomPhone(rng *rand.Rand) string {
	phone := fmt.Sprintf("+1-%03d-%03d-%04d", rng.Intn(1000), rng.Intn(1000), rng.Intn(10000))
	return truncate(phone, maxFieldWidth)
}

func randomEmail(rng *rand.Rand, first, last string) string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(first),
		strings.ToLower(last),
		rng.Intn(10000),
		pick(rng, emailDomains),
	)
}

// timestampThisYear returns a uniform-random instant between January 1 of the
// current year and now. The draw is a scaled Float64 rather than Int63n so a
// fixed seed consumes the same number of random values regardless of when the
// run happens.
func timestampThisYear(rng *rand.Rand) time.Time {
	now := time.Now()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	window := now.Sub(start)
	if window <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Float64() * float64(window)))
}
