package game

import (
	"math"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dinventory"
	"github.com/lxhmsk/fallout-3-save-analyzer/game/itemdb"
	"github.com/samber/lo"
)

func newItemStack(
	entry dinventory.Entry,
	formID dformid.FormID,
	item itemdb.ItemData,
	count int,
	itemInfo *dinventory.ItemInfo,
) *ItemStack {
	stack := ItemStack{
		InventoryIndex: entry.InventoryIndex,
		FormIDIndex:    entry.FormIDIndex,
		Count:          count,
		Description:    item.Description,
		Type:           item.Signature,
		BaseValue:      item.BaseValue,
		Weight:         item.Weight,
		MaxCondition:   item.MaxCondition,
		FormID:         formID,
	}
	if itemInfo != nil {
		stack.Condition = itemInfo.Condition
		stack.Equipped = itemInfo.Equipped
		stack.Hotkey = itemInfo.Hotkey
		stack.OwnerFormIDIndex = itemInfo.OwnerFormIDIndex
		stack.ScriptFormIDIndex = itemInfo.ScriptFormIDIndex
	}

	stack.SellValue = CalcSellValue(stack.BaseValue, stack.Condition, stack.MaxCondition)
	if stack.Weight != 0 {
		stack.ValueWeightRatio = float32(stack.SellValue) / stack.Weight
	}
	stack.ConditionPercent = 1
	if stack.Condition != nil && stack.MaxCondition != nil {
		stack.ConditionPercent = *stack.Condition / float32(*stack.MaxCondition)
	}
	return &stack
}

// NewInventory builds one stack per item info, preceded by a stack for the items of the
// entry that have no item info.
func NewInventory(raw dinventory.Inventory, formIDs *dformid.Table, items ItemLookup) *Inventory {
	stacks := make([]*ItemStack, 0, len(raw.Entries))
	for _, entry := range raw.Entries {
		formID := formIDs.FindFormIDByFormIDIndex(entry.FormIDIndex)
		item := items.Get(formID)

		bareCount := BareCount(entry)
		if bareCount > 0 {
			stacks = append(stacks, newItemStack(entry, formID, item, bareCount, nil))
		}
		for i := range entry.ItemInfos {
			itemInfo := entry.ItemInfos[i]
			stacks = append(stacks, newItemStack(entry, formID, item, itemInfo.Count, &itemInfo))
		}
	}
	return &Inventory{stacks: stacks}
}

// BareCount is the number of items of an entry that are not covered by its item infos.
func BareCount(entry dinventory.Entry) int {
	return int(entry.Count) - entry.TotalInfoCount()
}

// Stacks returns the stacks in inventory order. The slice is a copy, the stacks are not.
func (r *Inventory) Stacks() []*ItemStack {
	stacks := make([]*ItemStack, len(r.stacks))
	copy(stacks, r.stacks)
	return stacks
}

func (r *Inventory) Len() int {
	return len(r.stacks)
}

func (r *Inventory) IsEmpty() bool {
	return len(r.stacks) == 0
}

// TotalWeight sums the weight of the stacks. Unknown items have a negative weight and
// are left out.
func (r *Inventory) TotalWeight() float32 {
	return lo.SumBy(r.stacks, func(stack *ItemStack) float32 {
		if stack.Weight <= 0 {
			return 0
		}
		return stack.Weight * float32(stack.Count)
	})
}

func (r *Inventory) TotalSellValue() int {
	return lo.SumBy(r.stacks, func(stack *ItemStack) int {
		return stack.TotalSellValue()
	})
}

func (r *ItemStack) TotalWeight() float32 {
	return r.Weight * float32(r.Count)
}

func (r *ItemStack) TotalSellValue() int {
	return r.SellValue * r.Count
}

func (r *ItemStack) String() string {
	return r.Description
}

// CalcSellValue scales the base value by the condition to the power of 1.5, rounding
// half up. Items without a condition sell for their base value.
// See http://fallout.wikia.com/wiki/Condition#Value
func CalcSellValue(baseValue int, condition *float32, maxCondition *int) int {
	if condition == nil || maxCondition == nil {
		return baseValue
	}
	conditionPercent := float64(*condition) / float64(*maxCondition)
	return int(math.Floor(float64(baseValue)*math.Pow(conditionPercent, 1.5) + 0.5))
}
