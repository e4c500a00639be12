package dstruct

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dchange"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dheader"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dplayer"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dstats"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

// ToStructuredFile decodes the sections of a save in file order. The change records are
// only indexed; the player's two records are the only payloads decoded.
func ToStructuredFile(bs []byte) (*Struct, error) {
	reader := lbytes.NewBytesReader(bs)
	file := Struct{}

	header, err := dheader.Decode(reader)
	if err != nil {
		return nil, wrapDecodeError(err, "header")
	}
	file.Header = *header
	if err := dheader.SkipScreenshot(reader, file.Header); err != nil {
		return nil, wrapDecodeError(err, "screenshot")
	}
	file.Plugins, err = dheader.DecodePlugins(reader)
	if err != nil {
		return nil, wrapDecodeError(err, "plugins")
	}

	directory, err := dlocation.Decode(reader)
	if err != nil {
		return nil, wrapDecodeError(err, "location directory")
	}
	file.Directory = *directory

	miscStats, err := dstats.Decode(reader, file.Directory)
	if err != nil {
		return nil, wrapDecodeError(err, "misc stats")
	}
	file.MiscStats = *miscStats

	file.ChangeRecords, err = dchange.DecodeTable(reader, file.Directory)
	if err != nil {
		return nil, wrapDecodeError(err, "form change records")
	}
	file.FormIDs, err = dformid.DecodeTable(reader, file.Directory)
	if err != nil {
		return nil, wrapDecodeError(err, "form ids")
	}

	achrRecord, err := file.GetFormChangeRecord(dplayer.PlayerACHRFormID)
	if err != nil {
		return nil, wrapDecodeError(err, "player ACHR")
	}
	achr, err := dplayer.DecodeACHR(*achrRecord)
	if err != nil {
		return nil, wrapDecodeError(err, "player ACHR")
	}
	file.PlayerACHR = *achr

	npcRecord, err := file.GetFormChangeRecord(dplayer.PlayerNPCFormID)
	if err != nil {
		return nil, wrapDecodeError(err, "player NPC")
	}
	npc, err := dplayer.DecodeNPC(*npcRecord)
	if err != nil {
		return nil, wrapDecodeError(err, "player NPC")
	}
	file.PlayerNPC = *npc

	return &file, nil
}

// GetFormChangeRecord finds the change record of a global form id through the form id table.
func (r *Struct) GetFormChangeRecord(formID dformid.FormID) (*dchange.Record, error) {
	index, found := r.FormIDs.FindFormIDIndexByFormID(formID)
	if !found {
		return nil, lbytes.ErrDecode{
			Offset:  int(r.Directory.FormIDTableAddress),
			Message: fmt.Sprintf("form id %s is not in the form id table", formID),
		}
	}
	record, found := r.ChangeRecords.Get(index)
	if !found {
		return nil, lbytes.ErrDecode{
			Offset:  int(r.Directory.FormChangeRecordsTableAddress),
			Message: fmt.Sprintf("form id %s (index %s) has no form change record", formID, index),
		}
	}
	return &record, nil
}

// Strength is the player's current strength: base plus permanent and temporary changes.
// A save without base attributes has no strength to add the changes to and counts as zero.
func (r *Struct) Strength() int {
	stats := r.Stats()
	if stats == nil {
		return 0
	}
	return stats.Strength
}

// Stats are the player's current attributes, nil when the save has no base attributes.
func (r *Struct) Stats() *dplayer.Stats {
	if r.PlayerNPC.Stats == nil {
		return nil
	}
	stats := r.PlayerNPC.Stats.
		Add(r.PlayerACHR.PermanentStatChanges).
		Add(r.PlayerACHR.TemporaryStatChanges)
	return &stats
}

func wrapDecodeError(err error, section string) error {
	return errors.Wrapf(err, "ToStructuredFile error: %s", section)
}
