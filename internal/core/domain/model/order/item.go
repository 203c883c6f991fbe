package order

// defaultItemName is used when a payload line has neither a name nor a title.
const defaultItemName = "Item"

// Item is a single order line. Items have no lifecycle of their own; they are
// owned by their order and their slice order is the display order.
type Item struct {
	name  string
	price float64
}

// NewItem creates an order line. A missing name falls back to a placeholder
// and a negative price is clamped to zero, mirroring the lenient treatment of
// platform payloads.
func NewItem(name string, price float64) Item {
	if name == "" {
		name = defaultItemName
	}
	if price < 0 {
		price = 0
	}
	return Item{name: name, price: price}
}

// Name returns the line's display name.
func (i Item) Name() string {
	return i.name
}

// Price returns the line's unit price. Never negative.
func (i Item) Price() float64 {
	return i.price
}
