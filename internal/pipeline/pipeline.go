// Package pipeline drives the dependency-ordered generation and insertion of
// the pizzeria dataset. The schedule is a fixed linear sequence, not a
// topological sort: the dependency graph is static and known, and violating
// the order would be a programming error rather than a runtime condition.
package pipeline

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oghenedorotoby/rushmore-pizzeria/internal/config"
	"github.com/oghenedorotoby/rushmore-pizzeria/internal/database"
	"github.com/oghenedorotoby/rushmore-pizzeria/internal/generator"
)

var (
	storeColumns      = []string{"address", "city", "phone_number"}
	ingredientColumns = []string{"name", "stock_quantity", "unit"}
	menuItemColumns   = []string{"name", "category", "size", "price"}
	mappingColumns    = []string{"item_id", "ingredient_id", "quantity_required"}
	customerColumns   = []string{"first_name", "last_name", "email", "phone_number"}
	orderColumns      = []string{"customer_id", "store_id", "order_timestamp", "total_amount"}
	orderItemColumns  = []string{"order_id", "item_id", "quantity", "price_per_item"}
)

type Options struct {
	// Entity counts. Stores, Ingredients and MenuItems may be zero, meaning
	// the documented ranges ([3,5], [40,50], [20,30]) are sampled at start.
	Stores      int
	Ingredients int
	MenuItems   int
	Customers   int
	Orders      int

	// OrderBatchSize is how many order headers go to the store per
	// round-trip; ItemBufferSize is the line-item flush threshold. The two
	// are independent because the items-per-order ratio is randomized.
	OrderBatchSize int
	ItemBufferSize int

	// Durability selects between one fully atomic transaction and
	// checkpoint commits after each line-item flush. A checkpointed run
	// that fails mid-way keeps the prefix committed at earlier checkpoints.
	Durability string

	Seed int64
}

type Summary struct {
	RunID       string
	Stores      int
	Ingredients int
	MenuItems   int
	Mappings    int
	Customers   int
	Orders      int
	OrderItems  int
	Checkpoints int
}

type Pipeline struct {
	session database.Session
	opts    Options
	rng     *rand.Rand
	qb      squirrel.StatementBuilderType

	storeIDs      []int64
	ingredientIDs []int64
	itemIDs       []int64
	customerIDs   []int64

	// prices maps assigned menu item ids to their generated price. Built
	// once during the menu stage, read-only afterwards.
	prices map[int64]decimal.Decimal

	summary Summary
}

func New(session database.Session, opts Options) *Pipeline {
	if opts.OrderBatchSize <= 0 {
		opts.OrderBatchSize = 500
	}
	if opts.ItemBufferSize <= 0 {
		opts.ItemBufferSize = 2000
	}
	if opts.Durability == "" {
		opts.Durability = config.DurabilityCheckpointed
	}

	return &Pipeline{
		session: session,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		qb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		prices:  make(map[int64]decimal.Decimal),
	}
}

// Run executes all six stages inside one logical transaction. On failure the
// un-checkpointed portion rolls back and the error propagates; the session is
// left open for the caller to close.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	p.sampleVolumes()

	// Generator exhaustion is a parameter error and must surface before any
	// insertion is attempted.
	if err := generator.ValidateIngredientCount(p.opts.Ingredients); err != nil {
		return nil, err
	}

	// Same taxonomy for an impossible order request: stores, ingredients and
	// menu items are sampled when left at zero, but customers are not, and
	// every order must reference one.
	if p.opts.Orders > 0 && p.opts.Customers <= 0 {
		return nil, fmt.Errorf("cannot generate %d orders with %d customers", p.opts.Orders, p.opts.Customers)
	}

	p.summary.RunID = uuid.NewString()
	color.Cyan("🍕 Populating pizzeria dataset (run %s)", p.summary.RunID)
	fmt.Printf("   seed=%d durability=%s\n", p.opts.Seed, p.opts.Durability)

	if err := p.session.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := p.runStages(ctx); err != nil {
		if rbErr := p.session.Rollback(ctx); rbErr != nil {
			return nil, fmt.Errorf("run failed and rollback failed: %v (original: %w)", rbErr, err)
		}
		if p.summary.Checkpoints > 0 {
			return nil, fmt.Errorf("run aborted; rows committed at %d earlier checkpoint(s) remain, the rest was rolled back: %w",
				p.summary.Checkpoints, err)
		}
		return nil, fmt.Errorf("run aborted, all changes rolled back: %w", err)
	}

	if err := p.session.Commit(ctx); err != nil {
		if rbErr := p.session.Rollback(ctx); rbErr != nil {
			return nil, fmt.Errorf("commit failed and rollback failed: %v (original: %w)", rbErr, err)
		}
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	color.Green("✅ Population completed")
	return &p.summary, nil
}

// sampleVolumes fills in any counts left at zero from the documented ranges,
// using the run's seeded source so the sampling is reproducible.
func (p *Pipeline) sampleVolumes() {
	if p.opts.Stores == 0 {
		p.opts.Stores = 3 + p.rng.Intn(3)
	}
	if p.opts.Ingredients == 0 {
		p.opts.Ingredients = 40 + p.rng.Intn(11)
	}
	if p.opts.MenuItems == 0 {
		p.opts.MenuItems = 20 + p.rng.Intn(11)
	}
}

// runStages performs the fixed schedule: stores, ingredients, menu items,
// item/ingredient mappings, customers, then orders with their items. Every
// foreign key target is persisted and its ids captured before any dependent
// row is generated.
func (p *Pipeline) runStages(ctx context.Context) error {
	if err := p.insertStores(ctx); err != nil {
		return err
	}
	if err := p.insertIngredients(ctx); err != nil {
		return err
	}
	if err := p.insertMenuItems(ctx); err != nil {
		return err
	}
	if err := p.insertItemIngredients(ctx); err != nil {
		return err
	}
	if err := p.insertCustomers(ctx); err != nil {
		return err
	}
	return p.insertOrders(ctx)
}

func (p *Pipeline) insertStores(ctx context.Context) error {
	color.Cyan("  📝 Creating %d stores...", p.opts.Stores)

	stores := generator.Stores(p.rng, p.opts.Stores)
	rows := make([]database.Row, len(stores))
	for i, s := range stores {
		rows[i] = database.Row{s.Address, s.City, s.Phone}
	}

	ids, err := p.session.InsertBatchReturning(ctx, "stores", storeColumns, rows, "store_id")
	if err != nil {
		return fmt.Errorf("failed to insert stores: %w", err)
	}

	p.storeIDs = ids
	p.summary.Stores = len(ids)
	return nil
}

func (p *Pipeline) insertIngredients(ctx context.Context) error {
	color.Cyan("  📝 Creating %d ingredients...", p.opts.Ingredients)

	ingredients, err := generator.Ingredients(p.rng, p.opts.Ingredients)
	if err != nil {
		return err
	}
	rows := make([]database.Row, len(ingredients))
	for i, ing := range ingredients {
		rows[i] = database.Row{ing.Name, ing.Stock.StringFixed(2), ing.Unit}
	}

	ids, err := p.session.InsertBatchReturning(ctx, "ingredients", ingredientColumns, rows, "ingredient_id")
	if err != nil {
		return fmt.Errorf("failed to insert ingredients: %w", err)
	}

	p.ingredientIDs = ids
	p.summary.Ingredients = len(ids)
	return nil
}

func (p *Pipeline) insertMenuItems(ctx context.Context) error {
	color.Cyan("  📝 Creating %d menu items...", p.opts.MenuItems)

	items := generator.MenuItems(p.rng, p.opts.MenuItems)
	rows := make([]database.Row, len(items))
	for i, item := range items {
		rows[i] = database.Row{item.Name, item.Category, item.Size, item.Price.StringFixed(2)}
	}

	ids, err := p.session.InsertBatchReturning(ctx, "menu_items", menuItemColumns, rows, "item_id")
	if err != nil {
		return fmt.Errorf("failed to insert menu items: %w", err)
	}

	// The Nth generated row maps to the Nth returned id; that ordering is
	// what keys the price lookup correctly.
	for i, id := range ids {
		p.prices[id] = items[i].Price
	}
	p.itemIDs = ids
	p.summary.MenuItems = len(ids)
	return nil
}

func (p *Pipeline) insertItemIngredients(ctx context.Context) error {
	color.Cyan("  📝 Mapping menu items to ingredients...")

	mappings := generator.ItemIngredients(p.rng, p.itemIDs, p.ingredientIDs)
	rows := make([]database.Row, len(mappings))
	for i, m := range mappings {
		rows[i] = database.Row{m.ItemID, m.IngredientID, m.Quantity.StringFixed(2)}
	}

	if err := p.session.InsertBatch(ctx, "menu_item_ingredients", mappingColumns, rows); err != nil {
		return fmt.Errorf("failed to insert menu item ingredients: %w", err)
	}

	p.summary.Mappings = len(rows)
	return nil
}

func (p *Pipeline) insertCustomers(ctx context.Context) error {
	color.Cyan("  📝 Creating %d customers...", p.opts.Customers)

	customers := generator.Customers(p.rng, p.opts.Customers)
	rows := make([]database.Row, len(customers))
	for i, c := range customers {
		rows[i] = database.Row{c.FirstName, c.LastName, c.Email, c.Phone}
		if (i+1)%200 == 0 {
			fmt.Printf("     prepared %d customers...\n", i+1)
		}
	}

	ids, err := p.session.InsertBatchReturning(ctx, "customers", customerColumns, rows, "customer_id")
	if err != nil {
		return fmt.Errorf("failed to insert customers: %w", err)
	}

	p.customerIDs = ids
	p.summary.Customers = len(ids)
	return nil
}

// insertOrders is the two-phase last stage: order headers go in per batch to
// obtain ids, line items for those orders accumulate in a buffer flushed on
// its own threshold, and each header's total is patched as soon as its items
// are known. The total is computed from the in-memory generated values, never
// by re-reading persisted rows.
func (p *Pipeline) insertOrders(ctx context.Context) error {
	color.Cyan("  📝 Creating %d orders (and their order items)...", p.opts.Orders)

	itemBuf := newRowBuffer("order_items", orderItemColumns, p.opts.ItemBufferSize)

	for remaining := p.opts.Orders; remaining > 0; {
		batch := p.opts.OrderBatchSize
		if batch > remaining {
			batch = remaining
		}

		orders := generator.Orders(p.rng, batch, p.customerIDs, p.storeIDs)
		rows := make([]database.Row, len(orders))
		for i, o := range orders {
			rows[i] = database.Row{o.CustomerID, o.StoreID, o.Timestamp, o.Total.StringFixed(2)}
		}

		orderIDs, err := p.session.InsertBatchReturning(ctx, "orders", orderColumns, rows, "order_id")
		if err != nil {
			return fmt.Errorf("failed to insert orders: %w", err)
		}

		for _, orderID := range orderIDs {
			items, total := generator.OrderItems(p.rng, orderID, p.itemIDs, p.prices)
			for _, item := range items {
				itemBuf.add(database.Row{item.OrderID, item.ItemID, item.Quantity, item.PricePerItem.StringFixed(2)})
			}
			p.summary.OrderItems += len(items)

			if err := p.patchOrderTotal(ctx, orderID, total); err != nil {
				return err
			}
		}

		p.summary.Orders += len(orderIDs)
		remaining -= batch
		fmt.Printf("     inserted orders: %d; buffered order items: %d\n", p.summary.Orders, itemBuf.len())

		if itemBuf.full() {
			if err := itemBuf.flush(ctx, p.session); err != nil {
				return err
			}
			if p.opts.Durability == config.DurabilityCheckpointed {
				if err := p.checkpoint(ctx); err != nil {
					return err
				}
			}
		}
	}

	final := itemBuf.len()
	if err := itemBuf.flush(ctx, p.session); err != nil {
		return err
	}
	if final > 0 {
		fmt.Printf("     flushed final %d order items\n", final)
	}
	return nil
}

// patchOrderTotal issues the targeted per-order update with the reconciled
// total. Row-scoped and independent of the item buffer's flush timing.
func (p *Pipeline) patchOrderTotal(ctx context.Context, orderID int64, total decimal.Decimal) error {
	query, args, err := p.qb.
		Update("orders").
		Set("total_amount", total.StringFixed(2)).
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build order total update: %w", err)
	}

	if err := p.session.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update total for order %d: %w", orderID, err)
	}
	return nil
}

// checkpoint commits the work so far and opens a fresh transaction. This is
// the documented durability relaxation: a later failure leaves the committed
// prefix in place.
func (p *Pipeline) checkpoint(ctx context.Context) error {
	if err := p.session.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit checkpoint: %w", err)
	}
	if err := p.session.Begin(ctx); err != nil {
		return fmt.Errorf("failed to reopen transaction after checkpoint: %w", err)
	}
	p.summary.Checkpoints++
	fmt.Printf("     flushed order items and committed checkpoint %d\n", p.summary.Checkpoints)
	return nil
}
