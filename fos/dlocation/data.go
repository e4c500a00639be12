package dlocation

type (
	// Directory is the file location table. It is the only place telling where the
	// later tables start, there are no other pointers in the file.
	Directory struct {
		FormIDTableAddress            int32 `json:"form_id_table_address"`
		UnknownTableAddress           int32 `json:"unknown_table_address"`
		GlobalDataTable1Address       int32 `json:"global_data_table_1_address"`
		FormChangeRecordsTableAddress int32 `json:"form_change_records_table_address"`
		GlobalDataTable2Address       int32 `json:"global_data_table_2_address"`
		GlobalDataTable1Count         int32 `json:"global_data_table_1_count"`
		GlobalDataTable2Count         int32 `json:"global_data_table_2_count"`
		FormChangeRecordsCount        int32 `json:"form_change_records_count"`
	}
)

const (
	// PaddingSize is the run of zeroes after the eight fields.
	PaddingSize = 0x4E
	Size        = 8*4 + PaddingSize
)
