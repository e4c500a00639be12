package dlocation

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

func Decode(reader *lbytes.Reader) (*Directory, error) {
	directory := Directory{}

	instructions := []lbytes.Instruction{
		{Key: "form_id_table_address", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.FormIDTableAddress)},
		{Key: "unknown_table_address", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.UnknownTableAddress)},
		{Key: "global_data_table_1_address", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.GlobalDataTable1Address)},
		{Key: "form_change_records_table_address", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.FormChangeRecordsTableAddress)},
		{Key: "global_data_table_2_address", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.GlobalDataTable2Address)},
		{Key: "global_data_table_1_count", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.GlobalDataTable1Count)},
		{Key: "global_data_table_2_count", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.GlobalDataTable2Count)},
		{Key: "form_change_records_count", ReadFunction: lbytes.CreateIntReadFunction(reader, false, &directory.FormChangeRecordsCount)},
		{Key: "padding", ReadFunction: lbytes.CreateSkipFunction(reader, PaddingSize)},
	}
	if err := lbytes.ExecuteInstructions(instructions); err != nil {
		return nil, errors.Wrap(err, "dlocation.Decode error")
	}

	return &directory, nil
}
