// Package fos decodes Fallout 3 save files (.fos).
package fos

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dheader"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dstruct"
	"go.uber.org/zap"
)

func IsFOSFile(bs []byte) bool {
	return dheader.IsValidMagicNumber(bs)
}

// DecodeFOS decodes a whole save. The bytes are shared with the result and must not be
// modified afterwards.
func DecodeFOS(bs []byte, logger *zap.Logger) (*dstruct.Struct, error) {
	logger.Debug("decoding save", zap.Int("size", len(bs)))
	file, err := dstruct.ToStructuredFile(bs)
	if err != nil {
		logger.Debug("decoding save failed", zap.Error(err))
		return nil, err
	}

	logger.Debug(
		"decoded save",
		zap.String("name", file.Header.Name),
		zap.Int32("level", file.Header.Level),
		zap.Int("plugins", len(file.Plugins)),
		zap.Int32("form_id_table_address", file.Directory.FormIDTableAddress),
		zap.Int32("form_change_records_address", file.Directory.FormChangeRecordsTableAddress),
		zap.Int("form_change_records", file.ChangeRecords.Len()),
		zap.Int("form_ids", file.FormIDs.Size()),
		zap.Int("inventory_entries", len(file.PlayerACHR.Inventory.Entries)),
	)
	return file, nil
}
