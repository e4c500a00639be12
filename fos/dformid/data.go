package dformid

import (
	"fmt"
)

type (
	// FormID is a global 32-bit form id. NotFound marks forms that are not in the table.
	FormID int64
	// Table resolves form id indexes to form ids. Slot 0 is never used: the first id of
	// the file is stored at index 1.
	Table struct {
		formIDs []uint32
	}
)

const (
	NotFound = FormID(-1)
	// indexes with any of the top 2 bits set are default or created forms
	indexTypeShift = 22
	indexTypeMask  = 0b11
)

func (r FormID) String() string {
	if r == NotFound {
		return "--------"
	}
	return fmt.Sprintf("%08X", uint32(r))
}
