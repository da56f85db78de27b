package domain

import "github.com/shopspring/decimal"

// OrderLine is one "add" click. It keeps a copy of the item's name and price
// and has no link back to the menu entry.
type OrderLine struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

func NewOrderLine(id string, item MenuItem) OrderLine {
	return OrderLine{
		ID:    id,
		Name:  item.Name,
		Price: item.Price,
	}
}
