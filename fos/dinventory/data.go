package dinventory

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
)

type (
	// Inventory is the inventory as laid out in the save file.
	Inventory struct {
		Entries []Entry `json:"entries"`
	}
	// Entry is one inventory slot. Count is the total of the slot; the item infos
	// cover part of it and the rest are items without extra data.
	Entry struct {
		InventoryIndex int                `json:"inventory_index"`
		FormIDIndex    lbytes.FormIDIndex `json:"form_id_index"`
		Count          int32              `json:"count"`
		ItemInfos      []ItemInfo         `json:"item_infos"`
	}
	ItemInfo struct {
		Condition         *float32            `json:"condition"`
		Equipped          bool                `json:"equipped"`
		Count             int                 `json:"count"`
		Hotkey            *int                `json:"hotkey"`
		OwnerFormIDIndex  *lbytes.FormIDIndex `json:"owner_form_id_index"`
		ScriptFormIDIndex *lbytes.FormIDIndex `json:"script_form_id_index"`
		ScriptVariables   []ScriptVariable    `json:"script_variables"`
		// Unknown1, Unknown2 and Unknown3 hold tags of unknown meaning as they were read.
		Unknown1 []lbytes.FormIDIndex `json:"unknown_1"`
		Unknown2 []float32            `json:"unknown_2"`
		Unknown3 bool                 `json:"unknown_3"`
	}
	ScriptVariable struct {
		IndexAndFlags uint32             `json:"index_and_flags"`
		Kind          VariableKind       `json:"kind"`
		Number        float64            `json:"number"`
		FormIDIndex   lbytes.FormIDIndex `json:"form_id_index"`
	}
	VariableKind string
	Tag          uint8
)

const (
	TagScript         = Tag(0x0D)
	TagEquipped       = Tag(0x16)
	TagUnknown1       = Tag(0x1C)
	TagOwner          = Tag(0x21)
	TagConditionCount = Tag(0x24)
	TagCondition      = Tag(0x25)
	TagUnknown2       = Tag(0x30)
	TagUnknown3       = Tag(0x3E)
	TagHotkey         = Tag(0x4A)
)

const (
	VariableKindNumber      = VariableKind("number")
	VariableKindFormIDIndex = VariableKind("form_id_index")

	variableFlagsMask        = uint32(0xFF000000)
	variableFlagsNumber      = uint32(0)
	variableFlagsFormIDIndex = uint32(0x80000000)
)

func EmptyInventory() Inventory {
	return Inventory{Entries: []Entry{}}
}

func NewItemInfo() ItemInfo {
	return ItemInfo{Count: 1}
}
