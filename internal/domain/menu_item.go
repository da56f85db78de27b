package domain

import "github.com/shopspring/decimal"

type MenuItem struct {
	Name        string
	Ingredients string
	Price       decimal.Decimal
	ImgURL      string
}

// Menu is fixed once loaded; callers must not modify the slice.
type Menu []MenuItem

func (m Menu) Item(index int) (MenuItem, bool) {
	if index < 0 || index >= len(m) {
		return MenuItem{}, false
	}
	return m[index], true
}

// FormatPrice renders a price the way the page shows it, e.g. "$8" or "$8.5".
func FormatPrice(symbol string, price decimal.Decimal) string {
	return symbol + price.String()
}
