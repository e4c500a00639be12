package dchange

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/ds"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

func DecodeRecord(reader *lbytes.Reader) (*Record, error) {
	record := Record{
		Position: reader.Position(),
		data:     reader,
	}

	formIDIndex, err := reader.ReadFormIDIndex(false)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeRecord error: read form id index")
	}
	changeFlags, err := reader.ReadInt(false)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeRecord error: read change flags")
	}
	formTypeAndSizeWidth, err := reader.ReadUint8(false)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeRecord error: read form type")
	}
	version, err := reader.ReadUint8(false)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeRecord error: read version")
	}

	// the upper 2 bits of the form type byte select the width of the size field
	numSizeBytes := 1 << ((formTypeAndSizeWidth >> sizeWidthShift) & sizeWidthBitsMask)
	size, err := reader.ReadNumber(numSizeBytes)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeRecord error: read size")
	}

	record.FormIDIndex = formIDIndex
	record.ChangeFlags = uint32(changeFlags)
	record.FormType = formTypeAndSizeWidth & formTypeMask
	record.Version = version
	record.Size = int(size)
	record.DataPosition = reader.Position()

	if err := reader.Skip(record.Size); err != nil {
		return nil, errors.Wrap(err, "DecodeRecord error: skip data")
	}

	return &record, nil
}

func DecodeTable(reader *lbytes.Reader, directory dlocation.Directory) (*Table, error) {
	if err := reader.Seek(int(directory.FormChangeRecordsTableAddress)); err != nil {
		return nil, errors.Wrap(err, "dchange.DecodeTable error")
	}

	records := ds.NewLinkedHashMap[lbytes.FormIDIndex, Record]()
	for i := 0; i < int(directory.FormChangeRecordsCount); i++ {
		record, err := DecodeRecord(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "dchange.DecodeTable error: record %d", i)
		}
		if previous, existed := records.Get(record.FormIDIndex); existed {
			return nil, lbytes.ErrDecode{
				Offset: record.Position,
				Message: fmt.Sprintf(
					"conflicting form change records: previous %s, conflict %s",
					previous, record,
				),
			}
		}
		records.Put(record.FormIDIndex, *record)
	}

	return &Table{records: records}, nil
}

func (r *Table) Get(index lbytes.FormIDIndex) (Record, bool) {
	return r.records.Get(index)
}

func (r *Table) Len() int {
	return r.records.Len()
}

// Records lists the records in file order.
func (r *Table) Records() []Record {
	keys := r.records.Keys()
	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		record, _ := r.records.Get(key)
		records = append(records, record)
	}
	return records
}
