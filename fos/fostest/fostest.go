// Package fostest builds synthetic save file bytes for tests.
package fostest

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dchange"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dheader"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dinventory"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dplayer"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dstats"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
)

type (
	ItemInfo struct {
		Condition *float32
		// Count is only written when it is not zero
		Count    int16
		Equipped bool
		Hotkey   *uint8
		Owner    *lbytes.FormIDIndex
		Script   *lbytes.FormIDIndex
	}
	Entry struct {
		FormIDIndex lbytes.FormIDIndex
		Count       int32
		ItemInfos   []ItemInfo
	}
	ACHR struct {
		ActorValues map[int]float32
		Scale       float32
		// WriteExtraRecords writes the records between the scale and the inventory
		WriteExtraRecords func(builder *lbytes.Builder)
		NumExtraRecords   uint32
		// Inventory is only written when HasInventory is set
		HasInventory bool
		Inventory    []Entry
	}
	NPC struct {
		BaseData   bool
		Spells     []lbytes.FormIDIndex
		Attributes *[7]uint8
	}
	Record struct {
		FormIDIndex lbytes.FormIDIndex
		Flags       uint32
		FormType    uint8
		Payload     []byte
	}
	Save struct {
		Name             string
		ScreenshotWidth  int32
		ScreenshotHeight int32
		Plugins          []string
		MiscStats        [dstats.NumStats]int32
		Records          []Record
		FormIDs          []uint32
	}
)

func WriteItemInfo(builder *lbytes.Builder, itemInfo ItemInfo) {
	tags := lbytes.NewBuilder()
	tagCount := uint32(0)
	if itemInfo.Condition != nil {
		tags.Uint8(uint8(dinventory.TagCondition), true).Float(*itemInfo.Condition, true)
		tagCount++
	}
	if itemInfo.Count != 0 {
		tags.Uint8(uint8(dinventory.TagConditionCount), true).Short(itemInfo.Count, true)
		tagCount++
	}
	if itemInfo.Equipped {
		tags.Uint8(uint8(dinventory.TagEquipped), true)
		tagCount++
	}
	if itemInfo.Hotkey != nil {
		tags.Uint8(uint8(dinventory.TagHotkey), true).Uint8(*itemInfo.Hotkey, true)
		tagCount++
	}
	if itemInfo.Owner != nil {
		tags.Uint8(uint8(dinventory.TagOwner), true).FormIDIndex(*itemInfo.Owner, true)
		tagCount++
	}
	if itemInfo.Script != nil {
		tags.Uint8(uint8(dinventory.TagScript), true).
			FormIDIndex(*itemInfo.Script, true).
			Uvarint(0).
			Uint8(0, true).
			Uint8(0, true)
		tagCount++
	}
	builder.Uvarint(tagCount).Raw(tags.Bytes()...)
}

func WriteInventory(builder *lbytes.Builder, entries []Entry) {
	builder.Uvarint(uint32(len(entries)))
	for _, entry := range entries {
		builder.
			FormIDIndex(entry.FormIDIndex, true).
			Int(entry.Count, true).
			Uvarint(uint32(len(entry.ItemInfos)))
		for _, itemInfo := range entry.ItemInfos {
			WriteItemInfo(builder, itemInfo)
		}
	}
}

func (r ACHR) Flags() uint32 {
	if r.HasInventory {
		return dchange.FlagInventoryChange
	}
	return 0
}

func (r ACHR) Payload() []byte {
	builder := lbytes.NewBuilder().Zeroes(dplayer.MovedSize)
	for i := 0; i < dplayer.NumActorValues; i++ {
		builder.Float(r.ActorValues[i], true)
	}
	builder.Uint8(0, true).Float(r.Scale, true)
	builder.Uvarint(r.NumExtraRecords)
	if r.WriteExtraRecords != nil {
		r.WriteExtraRecords(builder)
	}
	if r.HasInventory {
		WriteInventory(builder, r.Inventory)
	}
	return builder.Bytes()
}

func (r NPC) Flags() uint32 {
	flags := uint32(0)
	if r.BaseData {
		flags |= dchange.FlagBaseData
	}
	if r.Spells != nil {
		flags |= dchange.FlagSpellListChange
	}
	if r.Attributes != nil {
		flags |= dchange.FlagAttributes
	}
	return flags
}

func (r NPC) Payload() []byte {
	builder := lbytes.NewBuilder()
	if r.BaseData {
		builder.Zeroes(dplayer.BaseDataSize).Pipe()
	}
	if r.Spells != nil {
		builder.Uvarint(uint32(len(r.Spells)))
		for _, spell := range r.Spells {
			builder.FormIDIndex(spell, true)
		}
		builder.Uint8(0, true)
	}
	if r.Attributes != nil {
		for i, value := range r.Attributes {
			builder.Uint8(value, i == 6)
		}
	}
	return builder.Bytes()
}

// WriteRecord writes a record header with a 4-byte size field followed by the payload.
func WriteRecord(builder *lbytes.Builder, record Record) {
	builder.
		FormIDIndex(record.FormIDIndex, false).
		Int(int32(record.Flags), false).
		Uint8(0b10<<6|record.FormType&0b0011_1111, false).
		Uint8(0x0F, false).
		Number(uint32(len(record.Payload)), 4).
		Raw(record.Payload...)
}

func (r Save) Build() []byte {
	prefix := lbytes.NewBuilder().
		String(dheader.MagicNumber, false).
		Int(0x30, false).
		Int(0x30, true).
		Int(r.ScreenshotWidth, true).
		Int(r.ScreenshotHeight, true).
		Int(1, true).
		BString(r.Name, true).
		BString("Neutral", true).
		Int(8, true).
		BString("Megaton", true).
		BString("001.02.03", true).
		Zeroes(int(r.ScreenshotWidth*r.ScreenshotHeight) * dheader.ScreenshotBytesPerPix).
		Uint8(dheader.PluginsMarker, false).
		Int(0, false).
		Uint8(uint8(len(r.Plugins)), true)
	for _, plugin := range r.Plugins {
		prefix.BString(plugin, true)
	}

	globals := lbytes.NewBuilder().
		Int(dstats.GlobalType, false).
		Int(dstats.StructSize, false).
		Int(dstats.NumStats, true)
	for _, stat := range r.MiscStats {
		globals.Int(stat, true)
	}

	records := lbytes.NewBuilder()
	for _, record := range r.Records {
		WriteRecord(records, record)
	}

	formIDs := lbytes.NewBuilder().Int(int32(len(r.FormIDs)), false)
	for _, formID := range r.FormIDs {
		formIDs.Int(int32(formID), false)
	}

	globalsAddress := prefix.Len() + dlocation.Size
	recordsAddress := globalsAddress + globals.Len()
	formIDsAddress := recordsAddress + records.Len()

	return lbytes.NewBuilder().
		Raw(prefix.Bytes()...).
		Int(int32(formIDsAddress), false).
		Int(0, false).
		Int(int32(globalsAddress), false).
		Int(int32(recordsAddress), false).
		Int(0, false).
		Int(0xC, false).
		Int(0x1, false).
		Int(int32(len(r.Records)), false).
		Zeroes(dlocation.PaddingSize).
		Raw(globals.Bytes()...).
		Raw(records.Bytes()...).
		Raw(formIDs.Bytes()...).
		Bytes()
}

// PlayerSave is a save with the player records at indexes 1 (ACHR) and 2 (NPC) and
// the given extra form ids from index 3 on.
func PlayerSave(achr ACHR, npc NPC, formIDs ...uint32) Save {
	return Save{
		Name:             "Lone Wanderer",
		ScreenshotWidth:  2,
		ScreenshotHeight: 2,
		Plugins:          []string{"Fallout3.esm"},
		Records: []Record{
			{FormIDIndex: 1, Flags: achr.Flags(), FormType: 0x01, Payload: achr.Payload()},
			{FormIDIndex: 2, Flags: npc.Flags(), FormType: 0x02, Payload: npc.Payload()},
		},
		FormIDs: append(
			[]uint32{uint32(dplayer.PlayerACHRFormID), uint32(dplayer.PlayerNPCFormID)},
			formIDs...,
		),
	}
}
