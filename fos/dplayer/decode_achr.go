package dplayer

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dchange"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dinventory"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

// DecodeACHR decodes the player's ACHR form change record.
//
// TES4 had the inventory at a fixed 905 bytes into the record; in FO3 the records
// between the actor values and the inventory vary in length.
// See http://www.uesp.net/wiki/Tes4Mod:Save_File_Format/Player_Data
func DecodeACHR(record dchange.Record) (*ACHRRecord, error) {
	reader, err := record.Reader()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeACHR error")
	}
	achr := ACHRRecord{Record: record}

	if err := reader.Skip(MovedSize); err != nil {
		return nil, errors.Wrap(err, "DecodeACHR error: skip moved struct")
	}

	// 220 floats of 4 bytes and a pipe each; fire resistance is the float at 52
	for i := range achr.ActorValues {
		value, err := reader.ReadFloat(true)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeACHR error: read actor value %d", i)
		}
		achr.ActorValues[i] = value
	}
	achr.TemporaryStatChanges = statsFromActorValues(achr.ActorValues[temporaryStatsOffset : temporaryStatsOffset+7])
	achr.PermanentStatChanges = statsFromActorValues(achr.ActorValues[permanentStatsOffset : permanentStatsOffset+7])
	achr.Experience = int(achr.ActorValues[experienceOffset])

	// actor flag, zero for the player
	if _, err := reader.AssertUint8(0, true); err != nil {
		return nil, errors.Wrap(err, "DecodeACHR error: read actor flag")
	}
	// 1.0 for regular saves, 0.4 while the player is still a baby
	achr.Scale, err = reader.ReadFloat(true)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeACHR error: read scale")
	}

	recordCount, err := reader.ReadUvarint()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeACHR error: read extra record count")
	}
	achr.ExtraRecords = make([]ExtraRecord, 0, recordCount)
	for i := 0; i < int(recordCount); i++ {
		extra, err := DecodeExtraRecord(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeACHR error: extra record %d", i)
		}
		achr.ExtraRecords = append(achr.ExtraRecords, *extra)
	}

	if record.HasInventoryChange() {
		inventory, err := dinventory.Decode(reader)
		if err != nil {
			return nil, errors.Wrap(err, "DecodeACHR error")
		}
		achr.Inventory = *inventory
	} else {
		achr.Inventory = dinventory.EmptyInventory()
	}

	return &achr, nil
}

func DecodeExtraRecord(reader *lbytes.Reader) (*ExtraRecord, error) {
	recordType, err := reader.ReadUint8(true)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeExtraRecord error: read type")
	}
	extra := ExtraRecord{Type: ExtraType(recordType)}

	switch extra.Type {
	case ExtraTypeLocation:
		err = decodeExtraLocation(reader, &extra)
	case ExtraTypeGameOnly:
		err = decodeExtraGameOnly(reader, &extra)
	case ExtraTypeFormList, ExtraTypeFormListAlt:
		err = decodeExtraFormList(reader, &extra)
	case ExtraTypeEncounterZone:
		var index lbytes.FormIDIndex
		index, err = reader.ReadFormIDIndex(true)
		extra.FormIDIndexes = []lbytes.FormIDIndex{index}
	case ExtraTypeInt:
		extra.Int, err = reader.ReadInt(true)
	default:
		return nil, lbytes.ErrDecode{
			Offset:  reader.PrevPosition(),
			Message: fmt.Sprintf("unknown record type 0x%02X before player inventory", recordType),
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "DecodeExtraRecord error: type 0x%02X", recordType)
	}
	return &extra, nil
}

// decodeExtraLocation reads a form id index and 4 floats, the first 3 look like a position.
func decodeExtraLocation(reader *lbytes.Reader, extra *ExtraRecord) error {
	index, err := reader.ReadFormIDIndex(true)
	if err != nil {
		return err
	}
	extra.FormIDIndexes = []lbytes.FormIDIndex{index}
	for _, readPipe := range []bool{false, false, true, true} {
		value, err := reader.ReadFloat(readPipe)
		if err != nil {
			return err
		}
		extra.Floats = append(extra.Floats, value)
	}
	return nil
}

func decodeExtraGameOnly(reader *lbytes.Reader, extra *ExtraRecord) error {
	count, err := reader.ReadUvarint()
	if err != nil {
		return err
	}
	for c := 0; c < int(count); c++ {
		index, err := reader.ReadFormIDIndex(true)
		if err != nil {
			return err
		}
		b, err := reader.ReadUint8(true)
		if err != nil {
			return err
		}
		extra.FormIDIndexes = append(extra.FormIDIndexes, index)
		extra.Bytes = append(extra.Bytes, b)
	}
	return nil
}

func decodeExtraFormList(reader *lbytes.Reader, extra *ExtraRecord) error {
	count, err := reader.ReadUvarint()
	if err != nil {
		return err
	}
	extra.FormIDIndexes = make([]lbytes.FormIDIndex, 0, count)
	for c := 0; c < int(count); c++ {
		index, err := reader.ReadFormIDIndex(true)
		if err != nil {
			return err
		}
		extra.FormIDIndexes = append(extra.FormIDIndexes, index)
	}
	return nil
}
