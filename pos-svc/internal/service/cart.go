package service

import (
	"slices"

	"foodcourt-pos/pos-svc/internal/domain"
)

// Cart holds at most one entry per menu item id, in first-insertion order.
// The total is always derived from the entries.
type Cart struct {
	items []domain.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(item domain.MenuItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, domain.CartItem{MenuItem: item, Quantity: 1})
}

// UpdateQuantity removes the entry when qty <= 0.
func (c *Cart) UpdateQuantity(itemID string, qty int) {
	if qty <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Remove(itemID string) {
	c.items = slices.DeleteFunc(c.items, func(ci domain.CartItem) bool { return ci.ID == itemID })
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []domain.CartItem {
	return cloneOrEmpty(c.items)
}

func (c *Cart) Quantity(itemID string) int {
	for _, ci := range c.items {
		if ci.ID == itemID {
			return ci.Quantity
		}
	}
	return 0
}

func (c *Cart) Total() int64 {
	var total int64
	for _, ci := range c.items {
		total += ci.Subtotal()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
