package dplayer

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dchange"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

// DecodeNPC decodes the player's NPC form change record. Each section is only present
// when its change flag is set.
func DecodeNPC(record dchange.Record) (*NPCRecord, error) {
	reader, err := record.Reader()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeNPC error")
	}
	npc := NPCRecord{
		Record:    record,
		SpellList: []lbytes.FormIDIndex{},
	}

	if record.HasBaseData() {
		if err := reader.Skip(BaseDataSize); err != nil {
			return nil, errors.Wrap(err, "DecodeNPC error: skip base data")
		}
		if err := reader.AssertPipe(); err != nil {
			return nil, errors.Wrap(err, "DecodeNPC error: base data")
		}
	}

	if record.HasSpellListChange() {
		count, err := reader.ReadUvarint()
		if err != nil {
			return nil, errors.Wrap(err, "DecodeNPC error: read spell count")
		}
		for i := 0; i < int(count); i++ {
			spell, err := reader.ReadFormIDIndex(true)
			if err != nil {
				return nil, errors.Wrapf(err, "DecodeNPC error: read spell %d", i)
			}
			npc.SpellList = append(npc.SpellList, spell)
		}
		// the list ends with a zero byte
		if _, err := reader.ReadUint8(true); err != nil {
			return nil, errors.Wrap(err, "DecodeNPC error: read spell list end")
		}
	}

	if record.HasAttributes() {
		// only the last attribute is followed by a pipe
		values := make([]int, 0, 7)
		for i := 0; i < 7; i++ {
			value, err := reader.ReadUint8(i == 6)
			if err != nil {
				return nil, errors.Wrapf(err, "DecodeNPC error: read attribute %d", i)
			}
			values = append(values, int(int8(value)))
		}
		npc.Stats = &Stats{
			Strength:     values[0],
			Perception:   values[1],
			Endurance:    values[2],
			Charisma:     values[3],
			Intelligence: values[4],
			Agility:      values[5],
			Luck:         values[6],
		}
	}

	return &npc, nil
}
