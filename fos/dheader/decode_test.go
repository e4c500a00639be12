package dheader

import (
	"testing"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createHeaderBytes(builder *lbytes.Builder, magic string, width int32, height int32) *lbytes.Builder {
	return builder.
		String(magic, false).
		Int(0x30, false).
		Int(0x30, true).
		Int(width, true).
		Int(height, true).
		Int(12, true).
		BString("Lone Wanderer", true).
		BString("Good", true).
		Int(14, true).
		BString("Megaton", true).
		BString("012.34.56", true)
}

func TestDecode(t *testing.T) {
	bs := createHeaderBytes(lbytes.NewBuilder(), MagicNumber, 2, 1).Bytes()
	reader := lbytes.NewBytesReader(bs)

	header, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(
		t,
		Header{
			Magic:            MagicNumber,
			HeaderSize:       0x30,
			Version:          0x30,
			ScreenshotWidth:  2,
			ScreenshotHeight: 1,
			SaveIndex:        12,
			Name:             "Lone Wanderer",
			Karma:            "Good",
			Level:            14,
			Location:         "Megaton",
			Playtime:         "012.34.56",
		},
		*header,
	)
	assert.True(t, IsValidMagicNumber(bs))
}

func TestDecode_InvalidMagic(t *testing.T) {
	bs := createHeaderBytes(lbytes.NewBuilder(), "FO4SAVEGAME", 0, 0).Bytes()
	_, err := Decode(lbytes.NewBytesReader(bs))
	assert.ErrorContains(t, err, "invalid magic number")
	assert.False(t, IsValidMagicNumber(bs))
}

func TestSkipScreenshotAndDecodePlugins(t *testing.T) {
	builder := createHeaderBytes(lbytes.NewBuilder(), MagicNumber, 2, 2)
	builder.
		Zeroes(2*2*ScreenshotBytesPerPix).
		Uint8(PluginsMarker, false).
		Int(20, false).
		Uint8(2, true).
		BString("Fallout3.esm", true).
		BString("Anchorage.esm", true)
	reader := lbytes.NewBytesReader(builder.Bytes())

	header, err := Decode(reader)
	require.NoError(t, err)
	require.NoError(t, SkipScreenshot(reader, *header))

	plugins, err := DecodePlugins(reader)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fallout3.esm", "Anchorage.esm"}, plugins)
	assert.Equal(t, 0, reader.Remaining())
}

func TestDecodePlugins_BadMarker(t *testing.T) {
	reader := lbytes.NewBytesReader([]byte{0x16, 0, 0, 0, 0, 0, lbytes.Pipe})
	_, err := DecodePlugins(reader)
	assert.Error(t, err)
}
