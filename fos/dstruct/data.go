package dstruct

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dchange"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dheader"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dplayer"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dstats"
)

type (
	Struct struct {
		Header        dheader.Header      `json:"header"`
		Plugins       []string            `json:"plugins"`
		Directory     dlocation.Directory `json:"directory"`
		MiscStats     dstats.MiscStats    `json:"misc_stats"`
		ChangeRecords *dchange.Table      `json:"-"`
		FormIDs       *dformid.Table      `json:"-"`
		PlayerACHR    dplayer.ACHRRecord  `json:"player_achr"`
		PlayerNPC     dplayer.NPCRecord   `json:"player_npc"`
	}
)
