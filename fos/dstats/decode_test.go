package dstats

import (
	"testing"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStatsBytes(structSize int32) []byte {
	builder := lbytes.NewBuilder().
		Zeroes(3).
		Int(GlobalType, false).
		Int(structSize, false).
		Int(NumStats, true)
	for i := int32(1); i <= NumStats; i++ {
		builder.Int(i, true)
	}
	return builder.Bytes()
}

func TestDecode(t *testing.T) {
	reader := lbytes.NewBytesReader(createStatsBytes(StructSize))
	directory := dlocation.Directory{GlobalDataTable1Address: 3}

	stats, err := Decode(reader, directory)
	require.NoError(t, err)
	assert.Equal(t, int32(1), stats.QuestsCompleted)
	assert.Equal(t, int32(3), stats.PeopleKilled)
	assert.Equal(t, int32(17), stats.BobbleheadsFound)
	assert.Equal(t, int32(26), stats.MysteriousStrangerVisits)
	assert.Equal(t, 0, reader.Remaining())
}

func TestDecode_UnexpectedStructSize(t *testing.T) {
	reader := lbytes.NewBytesReader(createStatsBytes(0x88))
	directory := dlocation.Directory{GlobalDataTable1Address: 3}

	_, err := Decode(reader, directory)
	assert.ErrorContains(t, err, "struct_size")
}
