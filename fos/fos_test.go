package fos_test

import (
	"testing"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/fostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsFOSFile(t *testing.T) {
	bs := fostest.PlayerSave(fostest.ACHR{Scale: 1}, fostest.NPC{}).Build()

	assert.True(t, fos.IsFOSFile(bs))
	assert.False(t, fos.IsFOSFile([]byte("FO3SAVE")))
	assert.False(t, fos.IsFOSFile([]byte("TES4SAVEGAME")))
}

func TestDecodeFOS(t *testing.T) {
	achr := fostest.ACHR{
		Scale:        1,
		HasInventory: true,
		Inventory:    []fostest.Entry{{FormIDIndex: 3, Count: 1}},
	}
	bs := fostest.PlayerSave(achr, fostest.NPC{}, 0x0000000F).Build()

	file, err := fos.DecodeFOS(bs, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, file.PlayerACHR.Inventory.Entries, 1)
}

func TestDecodeFOS_Error(t *testing.T) {
	_, err := fos.DecodeFOS([]byte("FO3SAVEGAME"), zap.NewNop())
	assert.Error(t, err)
}
