package dheader

type (
	Header struct {
		Magic            string `json:"magic"`
		HeaderSize       int32  `json:"header_size"`
		Version          int32  `json:"version"`
		ScreenshotWidth  int32  `json:"screenshot_width"`
		ScreenshotHeight int32  `json:"screenshot_height"`
		SaveIndex        int32  `json:"save_index"`
		Name             string `json:"name"`
		Karma            string `json:"karma"`
		Level            int32  `json:"level"`
		Location         string `json:"location"`
		Playtime         string `json:"playtime"`
	}
)

const (
	MagicNumber           = "FO3SAVEGAME"
	PluginsMarker         = uint8(0x15)
	ScreenshotBytesPerPix = 3
)
