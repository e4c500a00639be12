package dheader

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

func IsValidMagicNumber(bs []byte) bool {
	return len(bs) >= len(MagicNumber) && string(bs[:len(MagicNumber)]) == MagicNumber
}

func createMagicNumberReadFunction(reader *lbytes.Reader, into *string) lbytes.ReadFunction {
	return func() error {
		magic, err := reader.ReadString(len(MagicNumber), false)
		if err != nil {
			return err
		}
		if magic != MagicNumber {
			return lbytes.ErrDecode{
				Offset:  reader.PrevPosition(),
				Message: fmt.Sprintf("invalid magic number: expected %q, got %q", MagicNumber, magic),
			}
		}
		*into = magic
		return nil
	}
}

func Decode(reader *lbytes.Reader) (*Header, error) {
	header := Header{}

	headerInstructions := []lbytes.Instruction{
		{Key: "magic", ReadFunction: createMagicNumberReadFunction(reader, &header.Magic)},
		{Key: "header_size", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &header.HeaderSize)},
		{Key: "version", ReadFunction: lbytes.CreateIntReadFunction(reader, true, &header.Version)},
		{Key: "screenshot_width", ReadFunction: lbytes.CreateIntReadFunction(reader, true, &header.ScreenshotWidth)},
		{Key: "screenshot_height", ReadFunction: lbytes.CreateIntReadFunction(reader, true, &header.ScreenshotHeight)},
		{Key: "save_index", ReadFunction: lbytes.CreateIntReadFunction(reader, true, &header.SaveIndex)},
		{Key: "name", ReadFunction: lbytes.CreateBStringReadFunction(reader, &header.Name)},
		{Key: "karma", ReadFunction: lbytes.CreateBStringReadFunction(reader, &header.Karma)},
		{Key: "level", ReadFunction: lbytes.CreateIntReadFunction(reader, true, &header.Level)},
		{Key: "location", ReadFunction: lbytes.CreateBStringReadFunction(reader, &header.Location)},
		{Key: "playtime", ReadFunction: lbytes.CreateBStringReadFunction(reader, &header.Playtime)},
	}
	if err := lbytes.ExecuteInstructions(headerInstructions); err != nil {
		return nil, errors.Wrap(err, "dheader.Decode error")
	}

	return &header, nil
}

// SkipScreenshot moves past the raw RGB screenshot that follows the header.
func SkipScreenshot(reader *lbytes.Reader, header Header) error {
	if header.ScreenshotWidth < 0 || header.ScreenshotHeight < 0 {
		return lbytes.ErrDecode{
			Offset: reader.Position(),
			Message: fmt.Sprintf(
				"invalid screenshot dimensions %dx%d",
				header.ScreenshotWidth, header.ScreenshotHeight,
			),
		}
	}
	size := int(header.ScreenshotWidth) * int(header.ScreenshotHeight) * ScreenshotBytesPerPix
	if err := reader.Skip(size); err != nil {
		return errors.Wrap(err, "SkipScreenshot error")
	}
	return nil
}

func DecodePlugins(reader *lbytes.Reader) ([]string, error) {
	if _, err := reader.AssertUint8(PluginsMarker, false); err != nil {
		return nil, errors.Wrap(err, "DecodePlugins error: read marker")
	}
	// plugin struct size, not needed to walk the list
	if _, err := reader.ReadInt(false); err != nil {
		return nil, errors.Wrap(err, "DecodePlugins error: read struct size")
	}
	pluginCount, err := reader.ReadUint8(true)
	if err != nil {
		return nil, errors.Wrap(err, "DecodePlugins error: read count")
	}

	plugins := make([]string, 0, pluginCount)
	for i := 0; i < int(pluginCount); i++ {
		plugin, err := reader.ReadBString(true)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodePlugins error: read plugin %d", i)
		}
		plugins = append(plugins, plugin)
	}
	return plugins, nil
}
