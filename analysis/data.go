// Package analysis picks the items to drop to get under a carry weight.
package analysis

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/game"
)

type (
	// Drop is a number of items taken from a stack, 0 < Count <= ItemStack.Count.
	Drop struct {
		ItemStack *game.ItemStack `json:"item_stack"`
		Count     int             `json:"count"`
	}
	// Predicate reports whether a stack may be dropped at all.
	Predicate func(stack *game.ItemStack) bool
	DropScript struct {
		Script string
		// Undroppable drops cannot be expressed as console commands because the
		// console drops items of the same form id without regard to their condition.
		Undroppable []Drop
	}
)

// AlwaysPinnedFormIDs are quest items the player cannot drop.
var AlwaysPinnedFormIDs = map[dformid.FormID]struct{}{
	0x00015038: {}, // Pip-Boy 3000
	0x00025B83: {}, // Pip-Boy glove
	0x0002D3A5: {}, // food sanitizer
}

func (r Drop) Weight() float32 {
	return r.ItemStack.Weight * float32(r.Count)
}

func (r Drop) SellValue() int {
	return r.ItemStack.SellValue * r.Count
}

func TotalCount(drops []Drop) int {
	total := 0
	for _, drop := range drops {
		total += drop.Count
	}
	return total
}

func TotalWeight(drops []Drop) float32 {
	total := float32(0)
	for _, drop := range drops {
		total += drop.Weight()
	}
	return total
}

func TotalSellValue(drops []Drop) int {
	total := 0
	for _, drop := range drops {
		total += drop.SellValue()
	}
	return total
}
