package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu item categories. The size label enumeration depends on the category.
const (
	CategoryPizza = "Pizza"
	CategoryDrink = "Drink"
	CategorySide  = "Side"
)

var Categories = []string{CategoryPizza, CategoryDrink, CategorySide}

type Store struct {
	ID      int64
	Address string
	City    string
	Phone   string
}

type Ingredient struct {
	ID    int64
	Name  string
	Stock decimal.Decimal
	Unit  string
}

type MenuItem struct {
	ID       int64
	Name     string
	Category string
	Size     string
	Price    decimal.Decimal
}

// MenuItemIngredient links a menu item to one of its ingredients.
// Quantity is the amount of the ingredient the item requires, always > 0.
type MenuItemIngredient struct {
	ItemID       int64
	IngredientID int64
	Quantity     decimal.Decimal
}

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Order.Total is derived: the rounded sum of its items' price times quantity.
// It is inserted as a zero placeholder and patched once the items are known.
type Order struct {
	ID         int64
	CustomerID int64
	StoreID    int64
	Timestamp  time.Time
	Total      decimal.Decimal
}

// OrderItem snapshots the menu item's price at generation time; it is copied,
// not referenced live.
type OrderItem struct {
	OrderID      int64
	ItemID       int64
	Quantity     int
	PricePerItem decimal.Decimal
}
