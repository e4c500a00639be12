package dformid

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

func NewTable(formIDs []uint32) *Table {
	table := make([]uint32, len(formIDs)+1)
	copy(table[1:], formIDs)
	return &Table{formIDs: table}
}

func DecodeTable(reader *lbytes.Reader, directory dlocation.Directory) (*Table, error) {
	if err := reader.Seek(int(directory.FormIDTableAddress)); err != nil {
		return nil, errors.Wrap(err, "dformid.DecodeTable error")
	}
	count, err := reader.ReadInt(false)
	if err != nil {
		return nil, errors.Wrap(err, "dformid.DecodeTable error: read count")
	}
	if count < 0 {
		return nil, lbytes.ErrDecode{
			Offset:  reader.PrevPosition(),
			Message: fmt.Sprintf("negative form id table size %d", count),
		}
	}

	formIDs := make([]uint32, int(count))
	for i := range formIDs {
		formID, err := reader.ReadInt(false)
		if err != nil {
			return nil, errors.Wrapf(err, "dformid.DecodeTable error: read form id %d", i)
		}
		formIDs[i] = uint32(formID)
	}

	return NewTable(formIDs), nil
}

func (r *Table) Size() int {
	return len(r.formIDs) - 1
}

// FindFormIDIndexByFormID scans the table for formID.
func (r *Table) FindFormIDIndexByFormID(formID FormID) (lbytes.FormIDIndex, bool) {
	for i := 1; i < len(r.formIDs); i++ {
		if FormID(r.formIDs[i]) == formID {
			return lbytes.FormIDIndex(i), true
		}
	}
	return 0, false
}

// FindFormIDByFormIDIndex returns NotFound for default or created forms, and for
// indexes past the end of the table.
func (r *Table) FindFormIDByFormIDIndex(index lbytes.FormIDIndex) FormID {
	if (index>>indexTypeShift)&indexTypeMask != 0 {
		return NotFound
	}
	if int(index) >= len(r.formIDs) {
		return NotFound
	}
	return FormID(r.formIDs[index])
}
