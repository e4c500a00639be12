package dchange

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/ds"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
)

type (
	// Record is the header of a form change record plus a view of its payload.
	// The payload is decoded on demand by whoever needs the record.
	Record struct {
		Position     int                `json:"position"`
		FormIDIndex  lbytes.FormIDIndex `json:"form_id_index"`
		ChangeFlags  uint32             `json:"change_flags"`
		FormType     uint8              `json:"form_type"`
		Version      uint8              `json:"version"`
		Size         int                `json:"size"`
		DataPosition int                `json:"data_position"`
		data         *lbytes.Reader
	}
	Table struct {
		records *ds.LinkedHashMap[lbytes.FormIDIndex, Record]
	}
)

const (
	FlagBaseData        = uint32(1 << 1)
	FlagAttributes      = uint32(1 << 2)
	FlagSpellListChange = uint32(1 << 4)
	// TES4 had the inventory at bit 27, FO3 moved it to bit 5
	FlagInventoryChange = uint32(1 << 5)

	formTypeMask      = 0b0011_1111
	sizeWidthShift    = 6
	sizeWidthBitsMask = 0b11
)

func (r Record) HasFlag(flag uint32) bool {
	return r.ChangeFlags&flag != 0
}

func (r Record) HasBaseData() bool {
	return r.HasFlag(FlagBaseData)
}

func (r Record) HasAttributes() bool {
	return r.HasFlag(FlagAttributes)
}

func (r Record) HasSpellListChange() bool {
	return r.HasFlag(FlagSpellListChange)
}

func (r Record) HasInventoryChange() bool {
	return r.HasFlag(FlagInventoryChange)
}

// Reader returns a fresh cursor over the payload only, positioned at its first byte.
func (r Record) Reader() (*lbytes.Reader, error) {
	if r.data == nil {
		return nil, lbytes.ErrDecode{
			Offset:  r.DataPosition,
			Message: fmt.Sprintf("form change record %s has no backing data", r.FormIDIndex),
		}
	}
	return r.data.View(r.DataPosition, r.DataPosition+r.Size)
}

func (r Record) String() string {
	return fmt.Sprintf(
		"record %s at 0x%08X (flags 0x%08X, type 0x%02X, version 0x%02X, size 0x%08X, data at 0x%08X)",
		r.FormIDIndex, r.Position, r.ChangeFlags, r.FormType, r.Version, r.Size, r.DataPosition,
	)
}
