package dformid

import (
	"testing"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTable(t *testing.T, formIDs ...int32) *Table {
	builder := lbytes.NewBuilder().Zeroes(5).Int(int32(len(formIDs)), false)
	for _, formID := range formIDs {
		builder.Int(formID, false)
	}
	table, err := DecodeTable(
		lbytes.NewBytesReader(builder.Bytes()),
		dlocation.Directory{FormIDTableAddress: 5},
	)
	require.NoError(t, err)
	return table
}

func TestDecodeTable_OffByOne(t *testing.T) {
	table := decodeTable(t, 0xAA, 0xBB)

	assert.Equal(t, 2, table.Size())
	assert.Equal(t, FormID(0xAA), table.FindFormIDByFormIDIndex(1))
	assert.Equal(t, FormID(0xBB), table.FindFormIDByFormIDIndex(2))
	// slot 0 is the unused sentinel
	index0 := table.FindFormIDByFormIDIndex(0)
	assert.NotEqual(t, FormID(0xAA), index0)
	assert.NotEqual(t, FormID(0xBB), index0)
}

func TestTable_FindFormIDByFormIDIndex_NotInTable(t *testing.T) {
	table := decodeTable(t, 0xAA, 0xBB)

	assert.Equal(t, NotFound, table.FindFormIDByFormIDIndex(3))
	assert.Equal(t, NotFound, table.FindFormIDByFormIDIndex(0x400001))
	assert.Equal(t, NotFound, table.FindFormIDByFormIDIndex(0x800001))
	assert.Equal(t, NotFound, table.FindFormIDByFormIDIndex(0xC00001))
}

func TestTable_FindFormIDIndexByFormID(t *testing.T) {
	table := decodeTable(t, 0x14, 0x07)

	index, ok := table.FindFormIDIndexByFormID(0x07)
	assert.True(t, ok)
	assert.Equal(t, lbytes.FormIDIndex(2), index)

	_, ok = table.FindFormIDIndexByFormID(0x99)
	assert.False(t, ok)
	_, ok = table.FindFormIDIndexByFormID(0)
	assert.False(t, ok)
}

func TestDecodeTable_Truncated(t *testing.T) {
	bs := lbytes.NewBuilder().Int(3, false).Int(1, false).Bytes()
	_, err := DecodeTable(lbytes.NewBytesReader(bs), dlocation.Directory{})
	assert.ErrorContains(t, err, "read form id 1")
}

func TestFormID_String(t *testing.T) {
	assert.Equal(t, "00000014", FormID(0x14).String())
	assert.Equal(t, "--------", NotFound.String())
}
