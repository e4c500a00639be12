package game

import (
	"testing"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dinventory"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/lxhmsk/fallout-3-save-analyzer/game/itemdb"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDatabase() *itemdb.Database {
	return itemdb.New([]itemdb.ItemData{
		{FormID: 0xA1, Signature: "WEAP", Description: "Hunting Rifle", BaseValue: 150, Weight: 6, MaxCondition: lo.ToPtr(400)},
		{FormID: 0xA2, Signature: "ALCH", Description: "Stimpak", BaseValue: 25, Weight: 0.1},
		{FormID: 0xA3, Signature: "MISC", Description: "Bottle Cap", BaseValue: 1, Weight: 0},
	})
}

func createItemInfo(count int, modify func(itemInfo *dinventory.ItemInfo)) dinventory.ItemInfo {
	itemInfo := dinventory.NewItemInfo()
	itemInfo.Count = count
	if modify != nil {
		modify(&itemInfo)
	}
	return itemInfo
}

func TestNewInventory(t *testing.T) {
	formIDs := dformid.NewTable([]uint32{0xA1, 0xA2, 0xA3})
	raw := dinventory.Inventory{
		Entries: []dinventory.Entry{
			{
				InventoryIndex: 0,
				FormIDIndex:    1,
				Count:          3,
				ItemInfos: []dinventory.ItemInfo{
					createItemInfo(1, func(itemInfo *dinventory.ItemInfo) {
						itemInfo.Condition = lo.ToPtr(float32(100))
						itemInfo.Equipped = true
						itemInfo.Hotkey = lo.ToPtr(2)
					}),
				},
			},
			{InventoryIndex: 1, FormIDIndex: 2, Count: 5},
			{InventoryIndex: 2, FormIDIndex: 3, Count: 200},
			{InventoryIndex: 3, FormIDIndex: 9, Count: 1},
		},
	}

	inventory := NewInventory(raw, formIDs, createDatabase())
	stacks := inventory.Stacks()
	require.Len(t, stacks, 5)

	bareRifles := stacks[0]
	assert.Equal(t, 2, bareRifles.Count)
	assert.Nil(t, bareRifles.Condition)
	assert.False(t, bareRifles.Equipped)
	assert.Nil(t, bareRifles.Hotkey)
	assert.Equal(t, 150, bareRifles.SellValue)
	assert.Equal(t, float32(25), bareRifles.ValueWeightRatio)
	assert.Equal(t, float32(1), bareRifles.ConditionPercent)

	equippedRifle := stacks[1]
	assert.Equal(t, 1, equippedRifle.Count)
	assert.True(t, equippedRifle.Equipped)
	assert.Equal(t, lo.ToPtr(2), equippedRifle.Hotkey)
	assert.Equal(t, dformid.FormID(0xA1), equippedRifle.FormID)
	assert.Equal(t, "WEAP", equippedRifle.Type)
	// 150 * 0.25^1.5
	assert.Equal(t, 19, equippedRifle.SellValue)
	assert.Equal(t, float32(0.25), equippedRifle.ConditionPercent)

	caps := stacks[3]
	assert.Equal(t, "Bottle Cap", caps.Description)
	assert.Equal(t, float32(0), caps.ValueWeightRatio)

	unknown := stacks[4]
	assert.Equal(t, dformid.NotFound, unknown.FormID)
	assert.Equal(t, "UNKNOWN", unknown.Description)
	assert.Equal(t, "????", unknown.Type)
	assert.Equal(t, -1, unknown.BaseValue)
	assert.Equal(t, lbytes.FormIDIndex(9), unknown.FormIDIndex)

	assert.InDelta(t, 18+0.5, inventory.TotalWeight(), 0.0001)
	assert.Equal(t, 150*2+19+25*5+200+(-1), inventory.TotalSellValue())
}

func TestNewInventory_BareCountInvariant(t *testing.T) {
	formIDs := dformid.NewTable([]uint32{0xA2})
	entries := []dinventory.Entry{
		{FormIDIndex: 1, Count: 4},
		{FormIDIndex: 1, Count: 4, ItemInfos: []dinventory.ItemInfo{createItemInfo(1, nil), createItemInfo(2, nil)}},
		{FormIDIndex: 1, Count: 3, ItemInfos: []dinventory.ItemInfo{createItemInfo(3, nil)}},
		{FormIDIndex: 1, Count: 0},
	}

	for _, entry := range entries {
		inventory := NewInventory(dinventory.Inventory{Entries: []dinventory.Entry{entry}}, formIDs, createDatabase())
		total := lo.SumBy(inventory.Stacks(), func(stack *ItemStack) int { return stack.Count })

		assert.Equal(t, int(entry.Count), total)
		assert.Equal(t, int(entry.Count), BareCount(entry)+entry.TotalInfoCount())
		assert.GreaterOrEqual(t, BareCount(entry), 0)
		assert.Len(t, inventory.Stacks(), len(entry.ItemInfos)+lo.Ternary(BareCount(entry) > 0, 1, 0))
	}
}

func TestNewInventory_Empty(t *testing.T) {
	inventory := NewInventory(dinventory.EmptyInventory(), dformid.NewTable(nil), createDatabase())

	assert.True(t, inventory.IsEmpty())
	assert.Equal(t, float32(0), inventory.TotalWeight())
}

func TestCalcSellValue(t *testing.T) {
	testCases := []struct {
		name         string
		baseValue    int
		condition    *float32
		maxCondition *int
		expected     int
	}{
		{name: "no condition", baseValue: 100, maxCondition: lo.ToPtr(10), expected: 100},
		{name: "no max condition", baseValue: 100, condition: lo.ToPtr(float32(5)), expected: 100},
		{name: "full condition", baseValue: 100, condition: lo.ToPtr(float32(10)), maxCondition: lo.ToPtr(10), expected: 100},
		{name: "half condition", baseValue: 100, condition: lo.ToPtr(float32(50)), maxCondition: lo.ToPtr(100), expected: 35},
		{name: "rounds up", baseValue: 3, condition: lo.ToPtr(float32(64)), maxCondition: lo.ToPtr(100), expected: 2},
		{name: "broken", baseValue: 100, condition: lo.ToPtr(float32(0)), maxCondition: lo.ToPtr(10), expected: 0},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, CalcSellValue(testCase.baseValue, testCase.condition, testCase.maxCondition))
		})
	}
}

func TestCarryWeight(t *testing.T) {
	assert.Equal(t, 150, CarryWeight(0))
	assert.Equal(t, 210, CarryWeight(6))
}
