package dinventory

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Decode reads an inventory; reader must be at the first byte of the item count.
func Decode(reader *lbytes.Reader) (*Inventory, error) {
	// Unlike TES4 the counts are varints.
	// See http://www.uesp.net/wiki/Tes4Mod:Save_File_Format/Inventory
	inventoryCount, err := reader.ReadUvarint()
	if err != nil {
		return nil, errors.Wrap(err, "dinventory.Decode error: read item count")
	}

	inventory := Inventory{Entries: make([]Entry, 0, inventoryCount)}
	for i := 0; i < int(inventoryCount); i++ {
		entry, err := DecodeEntry(reader, i)
		if err != nil {
			return nil, errors.Wrapf(err, "dinventory.Decode error: entry %d", i)
		}
		inventory.Entries = append(inventory.Entries, *entry)
	}

	return &inventory, nil
}

func DecodeEntry(reader *lbytes.Reader, inventoryIndex int) (*Entry, error) {
	formIDIndex, err := reader.ReadFormIDIndex(true)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeEntry error: read form id index")
	}
	count, err := reader.ReadInt(true)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeEntry error: read count")
	}
	itemInfoCount, err := reader.ReadUvarint()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeEntry error: read item info count")
	}

	entry := Entry{
		InventoryIndex: inventoryIndex,
		FormIDIndex:    formIDIndex,
		Count:          count,
		ItemInfos:      make([]ItemInfo, 0, itemInfoCount),
	}
	for j := 0; j < int(itemInfoCount); j++ {
		itemInfo, err := DecodeItemInfo(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeEntry error: item info %d", j)
		}
		entry.ItemInfos = append(entry.ItemInfos, *itemInfo)
	}

	return &entry, nil
}

func DecodeItemInfo(reader *lbytes.Reader) (*ItemInfo, error) {
	tagCount, err := reader.ReadUvarint()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeItemInfo error: read tag count")
	}

	itemInfo := NewItemInfo()
	for k := 0; k < int(tagCount); k++ {
		tag, err := reader.ReadUint8(true)
		if err != nil {
			return nil, errors.Wrap(err, "DecodeItemInfo error: read tag")
		}
		if err := decodeTag(reader, Tag(tag), &itemInfo); err != nil {
			return nil, errors.Wrapf(err, "DecodeItemInfo error: tag 0x%02X", tag)
		}
	}

	return &itemInfo, nil
}

func decodeTag(reader *lbytes.Reader, tag Tag, itemInfo *ItemInfo) error {
	switch tag {
	case TagCondition:
		condition, err := reader.ReadFloat(true)
		if err != nil {
			return err
		}
		itemInfo.Condition = &condition
	case TagConditionCount:
		count, err := reader.ReadShort(true)
		if err != nil {
			return err
		}
		if count < 0 {
			return lbytes.ErrDecode{
				Offset:  reader.PrevPosition(),
				Message: fmt.Sprintf("negative item count %d", count),
			}
		}
		itemInfo.Count = int(count)
	case TagEquipped:
		itemInfo.Equipped = true
	case TagHotkey:
		hotkey, err := reader.ReadUint8(true)
		if err != nil {
			return err
		}
		value := int(int8(hotkey))
		itemInfo.Hotkey = &value
	case TagOwner:
		owner, err := reader.ReadFormIDIndex(true)
		if err != nil {
			return err
		}
		itemInfo.OwnerFormIDIndex = &owner
	case TagScript:
		return decodeScript(reader, itemInfo)
	case TagUnknown1:
		// followed by a form id index, may repeat
		index, err := reader.ReadFormIDIndex(true)
		if err != nil {
			return err
		}
		itemInfo.Unknown1 = append(itemInfo.Unknown1, index)
	case TagUnknown2:
		value, err := reader.ReadFloat(true)
		if err != nil {
			return err
		}
		itemInfo.Unknown2 = append(itemInfo.Unknown2, value)
	case TagUnknown3:
		// no payload, seen on items with a count of zero
		itemInfo.Unknown3 = true
	default:
		return lbytes.ErrDecode{
			Offset:  reader.PrevPosition(),
			Message: fmt.Sprintf("unknown inventory tag 0x%02X", uint8(tag)),
		}
	}
	return nil
}

func decodeScript(reader *lbytes.Reader, itemInfo *ItemInfo) error {
	script, err := reader.ReadFormIDIndex(true)
	if err != nil {
		return err
	}
	itemInfo.ScriptFormIDIndex = &script

	variableCount, err := reader.ReadUvarint()
	if err != nil {
		return err
	}
	// FO3 packs the variable index and type into one int, TES4 used two shorts.
	// See http://www.uesp.net/wiki/Tes4Mod:Save_File_Format/Properties
	variables := make([]ScriptVariable, 0, variableCount)
	for v := 0; v < int(variableCount); v++ {
		indexAndFlags, err := reader.ReadInt(true)
		if err != nil {
			return err
		}
		variable := ScriptVariable{IndexAndFlags: uint32(indexAndFlags)}
		switch uint32(indexAndFlags) & variableFlagsMask {
		case variableFlagsNumber:
			variable.Kind = VariableKindNumber
			variable.Number, err = reader.ReadDouble(true)
		case variableFlagsFormIDIndex:
			variable.Kind = VariableKindFormIDIndex
			variable.FormIDIndex, err = reader.ReadFormIDIndex(true)
		default:
			return lbytes.ErrDecode{
				Offset:  reader.PrevPosition(),
				Message: fmt.Sprintf("unknown script variable flags: index and flags 0x%08X", uint32(indexAndFlags)),
			}
		}
		if err != nil {
			return err
		}
		variables = append(variables, variable)
	}
	itemInfo.ScriptVariables = variables

	if _, err := reader.AssertUint8(0, true); err != nil {
		return err
	}
	if _, err := reader.AssertUint8(0, true); err != nil {
		return err
	}
	return nil
}

// TotalInfoCount is the number of items of the entry that carry extra data.
func (r Entry) TotalInfoCount() int {
	return lo.SumBy(
		r.ItemInfos,
		func(itemInfo ItemInfo) int { return itemInfo.Count },
	)
}
