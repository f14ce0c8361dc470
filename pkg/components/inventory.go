package components

import (
	"errors"

	"github.com/gonewx/survivor/pkg/types"
)

// InventorySlots is the number of items the player can carry.
const InventorySlots = 6

var (
	// ErrInventoryFull is returned when a new item finds no free slot.
	ErrInventoryFull = errors.New("inventory is full")
	// ErrItemMaxLevel is returned when a carried item cannot level further.
	ErrItemMaxLevel = errors.New("item is already at max level")
)

// ItemStack is one carried item and its level.
type ItemStack struct {
	ID    types.ItemID
	Level int
}

// InventoryComponent is the player's fixed set of item slots.
type InventoryComponent struct {
	Slots [InventorySlots]*ItemStack
}

// Add levels up a carried id, or places it at level 1 in the first free slot.
func (c *InventoryComponent) Add(id types.ItemID, maxLevel int) (*ItemStack, error) {
	if stack := c.Find(id); stack != nil {
		if stack.Level >= maxLevel {
			return stack, ErrItemMaxLevel
		}
		stack.Level++
		return stack, nil
	}
	for i, slot := range c.Slots {
		if slot == nil {
			c.Slots[i] = &ItemStack{ID: id, Level: 1}
			return c.Slots[i], nil
		}
	}
	return nil, ErrInventoryFull
}

// Remove empties slot i and returns what it held.
func (c *InventoryComponent) Remove(i int) *ItemStack {
	if i < 0 || i >= InventorySlots {
		return nil
	}
	stack := c.Slots[i]
	c.Slots[i] = nil
	return stack
}

// Find returns the stack of id, or nil.
func (c *InventoryComponent) Find(id types.ItemID) *ItemStack {
	for _, slot := range c.Slots {
		if slot != nil && slot.ID == id {
			return slot
		}
	}
	return nil
}

// Full reports whether every slot is taken.
func (c *InventoryComponent) Full() bool {
	for _, slot := range c.Slots {
		if slot == nil {
			return false
		}
	}
	return true
}

// Items returns the carried stacks in slot order.
func (c *InventoryComponent) Items() []ItemStack {
	items := make([]ItemStack, 0, InventorySlots)
	for _, slot := range c.Slots {
		if slot != nil {
			items = append(items, *slot)
		}
	}
	return items
}
