// Package game joins the decoded save with the item database.
package game

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dstruct"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/lxhmsk/fallout-3-save-analyzer/game/itemdb"
)

type (
	// ItemStack is a group of identical items in the player's inventory. Stacks are
	// shared by pointer and never modified after assembly.
	ItemStack struct {
		InventoryIndex    int                 `json:"inventory_index"`
		FormIDIndex       lbytes.FormIDIndex  `json:"form_id_index"`
		Count             int                 `json:"count"`
		Condition         *float32            `json:"condition"`
		Equipped          bool                `json:"equipped"`
		Hotkey            *int                `json:"hotkey"`
		OwnerFormIDIndex  *lbytes.FormIDIndex `json:"owner_form_id_index"`
		ScriptFormIDIndex *lbytes.FormIDIndex `json:"script_form_id_index"`

		Description  string  `json:"description"`
		Type         string  `json:"type"`
		BaseValue    int     `json:"base_value"`
		Weight       float32 `json:"weight"`
		MaxCondition *int    `json:"max_condition"`

		FormID dformid.FormID `json:"form_id"`

		SellValue        int     `json:"sell_value"`
		ValueWeightRatio float32 `json:"value_weight_ratio"`
		ConditionPercent float32 `json:"condition_percent"`
	}
	Inventory struct {
		stacks []*ItemStack
	}
	// ItemLookup resolves global form ids to item data, with a sentinel for unknown ids.
	ItemLookup interface {
		Get(formID dformid.FormID) itemdb.ItemData
	}
	// Game is a loaded save together with the assembled player inventory.
	Game struct {
		Save      *dstruct.Struct
		Inventory *Inventory
	}
)

const (
	BaseCarryWeight        = 150
	CarryWeightPerStrength = 10
)
