package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/config"
	"github.com/oghenedorotoby/rushmore-pizzeria/internal/database"
	"github.com/oghenedorotoby/rushmore-pizzeria/internal/generator"
)

// fakeSession is an in-memory database.Session. It assigns sequential ids per
// table (ids survive rollback, like Postgres sequences), keeps pending rows
// separate from committed rows, and can inject a failure on the Nth insert
// into a given table.
type fakeSession struct {
	pending   map[string][]database.Row
	committed map[string][]database.Row
	nextID    map[string]int64

	pendingTotals   map[int64]string
	committedTotals map[int64]string

	begins    int
	commits   int
	rollbacks int
	inserts   int

	failTable    string
	failOnCall   int // 1-based count of inserts into failTable
	failOnCommit int // 1-based commit count
	tableCalls   map[string]int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		pending:         make(map[string][]database.Row),
		committed:       make(map[string][]database.Row),
		nextID:          make(map[string]int64),
		pendingTotals:   make(map[int64]string),
		committedTotals: make(map[int64]string),
		tableCalls:      make(map[string]int),
	}
}

func (f *fakeSession) Begin(ctx context.Context) error {
	f.begins++
	return nil
}

func (f *fakeSession) Commit(ctx context.Context) error {
	f.commits++
	if f.commits == f.failOnCommit {
		return fmt.Errorf("simulated commit failure")
	}
	for table, rows := range f.pending {
		f.committed[table] = append(f.committed[table], rows...)
		delete(f.pending, table)
	}
	for id, total := range f.pendingTotals {
		f.committedTotals[id] = total
	}
	f.pendingTotals = make(map[int64]string)
	return nil
}

func (f *fakeSession) Rollback(ctx context.Context) error {
	f.rollbacks++
	f.pending = make(map[string][]database.Row)
	f.pendingTotals = make(map[int64]string)
	return nil
}

func (f *fakeSession) Close(ctx context.Context) error { return nil }

func (f *fakeSession) insert(table string, rows []database.Row) error {
	f.inserts++
	f.tableCalls[table]++
	if table == f.failTable && f.tableCalls[table] == f.failOnCall {
		return fmt.Errorf("simulated storage failure on %s", table)
	}
	f.pending[table] = append(f.pending[table], rows...)
	return nil
}

func (f *fakeSession) InsertBatch(ctx context.Context, table string, columns []string, rows []database.Row) error {
	return f.insert(table, rows)
}

func (f *fakeSession) InsertBatchReturning(ctx context.Context, table string, columns []string, rows []database.Row, idColumn string) ([]int64, error) {
	if err := f.insert(table, rows); err != nil {
		return nil, err
	}
	ids := make([]int64, len(rows))
	for i := range rows {
		f.nextID[table]++
		ids[i] = f.nextID[table]
	}
	return ids, nil
}

func (f *fakeSession) Exec(ctx context.Context, query string, args ...interface{}) error {
	// The only Exec the pipeline issues is the per-order total patch:
	// UPDATE orders SET total_amount = $1 WHERE order_id = $2
	if len(args) != 2 {
		return fmt.Errorf("unexpected exec args: %v", args)
	}
	f.pendingTotals[args[1].(int64)] = args[0].(string)
	return nil
}

func smallOptions() Options {
	return Options{
		Stores:         3,
		Ingredients:    40,
		MenuItems:      20,
		Customers:      60,
		Orders:         120,
		OrderBatchSize: 50,
		ItemBufferSize: 100,
		Durability:     config.DurabilityAtomic,
		Seed:           7,
	}
}

func TestRunProducesConsistentDataset(t *testing.T) {
	session := newFakeSession()
	summary, err := New(session, smallOptions()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Stores)
	assert.Equal(t, 40, summary.Ingredients)
	assert.Equal(t, 20, summary.MenuItems)
	assert.Equal(t, 60, summary.Customers)
	assert.Equal(t, 120, summary.Orders)
	assert.NotEmpty(t, summary.RunID)

	assert.Len(t, session.committed["stores"], 3)
	assert.Len(t, session.committed["ingredients"], 40)
	assert.Len(t, session.committed["menu_items"], 20)
	assert.Len(t, session.committed["customers"], 60)
	assert.Len(t, session.committed["orders"], 120)
	assert.Len(t, session.committed["order_items"], summary.OrderItems)

	// Atomic mode: one transaction, one commit, no rollback.
	assert.Equal(t, 1, session.begins)
	assert.Equal(t, 1, session.commits)
	assert.Zero(t, session.rollbacks)
	assert.Zero(t, summary.Checkpoints)
}

func TestRunOrderTotalsMatchItems(t *testing.T) {
	session := newFakeSession()
	summary, err := New(session, smallOptions()).Run(context.Background())
	require.NoError(t, err)

	// Recompute each order's total from its persisted items: rounded
	// price x quantity per line, summed.
	recomputed := make(map[int64]decimal.Decimal)
	for _, row := range session.committed["order_items"] {
		orderID := row[0].(int64)
		quantity := decimal.NewFromInt(int64(row[2].(int)))
		price := decimal.RequireFromString(row[3].(string))
		recomputed[orderID] = recomputed[orderID].Add(price.Mul(quantity).Round(2))
	}

	require.Len(t, session.committedTotals, summary.Orders)
	for orderID, total := range session.committedTotals {
		require.Contains(t, recomputed, orderID, "order %d has no items", orderID)
		assert.Equal(t, recomputed[orderID].StringFixed(2), total, "order %d total mismatch", orderID)
	}
}

func TestRunForeignKeysResolve(t *testing.T) {
	session := newFakeSession()
	summary, err := New(session, smallOptions()).Run(context.Background())
	require.NoError(t, err)

	inRange := func(id int64, count int) bool { return id >= 1 && id <= int64(count) }

	for _, row := range session.committed["order_items"] {
		assert.True(t, inRange(row[0].(int64), summary.Orders), "dangling order_id %v", row[0])
		assert.True(t, inRange(row[1].(int64), summary.MenuItems), "dangling item_id %v", row[1])
		quantity := row[2].(int)
		assert.GreaterOrEqual(t, quantity, 1)
	}

	for _, row := range session.committed["menu_item_ingredients"] {
		assert.True(t, inRange(row[0].(int64), summary.MenuItems), "dangling item_id %v", row[0])
		assert.True(t, inRange(row[1].(int64), summary.Ingredients), "dangling ingredient_id %v", row[1])
		quantity := decimal.RequireFromString(row[2].(string))
		assert.True(t, quantity.IsPositive(), "mapping quantity must be > 0")
	}

	for _, row := range session.committed["orders"] {
		assert.True(t, inRange(row[0].(int64), summary.Customers), "dangling customer_id %v", row[0])
		assert.True(t, inRange(row[1].(int64), summary.Stores), "dangling store_id %v", row[1])
	}
}

func TestRunCheckpointedCommitsIncrementally(t *testing.T) {
	opts := smallOptions()
	opts.Durability = config.DurabilityCheckpointed

	session := newFakeSession()
	summary, err := New(session, opts).Run(context.Background())
	require.NoError(t, err)

	// ~360 items against a 100-row buffer must checkpoint at least once.
	require.Positive(t, summary.Checkpoints)
	assert.Equal(t, summary.Checkpoints+1, session.commits)
	assert.Equal(t, summary.Checkpoints+1, session.begins)
}

func TestRunFailureRollsBackToLastCheckpoint(t *testing.T) {
	opts := smallOptions()
	opts.Durability = config.DurabilityCheckpointed

	// Fail on the last order batch, after at least one checkpoint commit.
	session := newFakeSession()
	session.failTable = "orders"
	session.failOnCall = 3

	_, err := New(session, opts).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checkpoint")
	assert.Equal(t, 1, session.rollbacks)

	// The committed prefix survives; nothing past the last checkpoint does.
	assert.Empty(t, session.pending)
	assert.NotEmpty(t, session.committed["stores"])
	assert.NotEmpty(t, session.committed["orders"])
	assert.Less(t, len(session.committed["orders"]), opts.Orders)
}

func TestRunFailureAtomicLeavesNothing(t *testing.T) {
	opts := smallOptions()

	session := newFakeSession()
	session.failTable = "customers"
	session.failOnCall = 1

	_, err := New(session, opts).Run(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "checkpoint")
	assert.Equal(t, 1, session.rollbacks)
	assert.Empty(t, session.committed)
	assert.Empty(t, session.pending)
}

func TestRunOrdersWithoutCustomersDetectedBeforeInsert(t *testing.T) {
	opts := smallOptions()
	opts.Customers = 0 // explicit, not "sample a default"

	session := newFakeSession()
	_, err := New(session, opts).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customers")

	// A parameter error, not a crash: no transaction, no inserts.
	assert.Zero(t, session.begins)
	assert.Zero(t, session.inserts)
}

func TestRunCommitFailureRollsBack(t *testing.T) {
	session := newFakeSession()
	session.failOnCommit = 1

	_, err := New(session, smallOptions()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit")
	assert.Equal(t, 1, session.rollbacks)
	assert.Empty(t, session.committed)
	assert.Empty(t, session.pending)
}

func TestRunPoolExhaustionDetectedBeforeInsert(t *testing.T) {
	opts := smallOptions()
	opts.Ingredients = 60 // more than the name pool holds

	session := newFakeSession()
	_, err := New(session, opts).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrPoolExhausted))

	// Detected before any round-trip: no transaction, no inserts.
	assert.Zero(t, session.begins)
	assert.Zero(t, session.inserts)
}

func TestRunSeedReproducibility(t *testing.T) {
	first := newFakeSession()
	_, err := New(first, smallOptions()).Run(context.Background())
	require.NoError(t, err)

	second := newFakeSession()
	_, err = New(second, smallOptions()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.committed["stores"], second.committed["stores"])
	assert.Equal(t, first.committed["ingredients"], second.committed["ingredients"])
	assert.Equal(t, first.committed["menu_items"], second.committed["menu_items"])
	assert.Equal(t, first.committedTotals, second.committedTotals)
}
