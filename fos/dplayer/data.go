package dplayer

import (
	"fmt"

	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dchange"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dformid"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dinventory"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
)

type (
	// Stats are the seven S.P.E.C.I.A.L. attributes, or changes to them.
	Stats struct {
		Strength     int `json:"strength"`
		Perception   int `json:"perception"`
		Endurance    int `json:"endurance"`
		Charisma     int `json:"charisma"`
		Intelligence int `json:"intelligence"`
		Agility      int `json:"agility"`
		Luck         int `json:"luck"`
	}
	ACHRRecord struct {
		dchange.Record
		Inventory            dinventory.Inventory    `json:"inventory"`
		Experience           int                     `json:"experience"`
		PermanentStatChanges Stats                   `json:"permanent_stat_changes"`
		TemporaryStatChanges Stats                   `json:"temporary_stat_changes"`
		Scale                float32                 `json:"scale"`
		ExtraRecords         []ExtraRecord           `json:"extra_records"`
		ActorValues          [NumActorValues]float32 `json:"-"`
	}
	// ExtraRecord is one of the variable records between the actor values and the inventory.
	// Only the fields of its type are set.
	ExtraRecord struct {
		Type          ExtraType            `json:"type"`
		FormIDIndexes []lbytes.FormIDIndex `json:"form_id_indexes,omitempty"`
		Floats        []float32            `json:"floats,omitempty"`
		Bytes         []uint8              `json:"bytes,omitempty"`
		Int           int32                `json:"int,omitempty"`
	}
	ExtraType uint8
	NPCRecord struct {
		dchange.Record
		// Stats is nil when the record carries no attributes.
		Stats     *Stats               `json:"stats"`
		SpellList []lbytes.FormIDIndex `json:"spell_list"`
	}
)

const (
	PlayerACHRFormID = dformid.FormID(0x00000014)
	PlayerNPCFormID  = dformid.FormID(0x00000007)

	MovedSize      = 28
	NumActorValues = 220
	BaseDataSize   = 24

	// positions within the actor values
	temporaryStatsOffset = 5
	permanentStatsOffset = 78
	experienceOffset     = 98
)

const (
	ExtraTypeLocation      = ExtraType(0x18)
	ExtraTypeFormList      = ExtraType(0x1D)
	ExtraTypeGameOnly      = ExtraType(0x5E)
	ExtraTypeInt           = ExtraType(0x60)
	ExtraTypeEncounterZone = ExtraType(0x74)
	ExtraTypeFormListAlt   = ExtraType(0x7C)
)

func (r Stats) Add(other Stats) Stats {
	return Stats{
		Strength:     r.Strength + other.Strength,
		Perception:   r.Perception + other.Perception,
		Endurance:    r.Endurance + other.Endurance,
		Charisma:     r.Charisma + other.Charisma,
		Intelligence: r.Intelligence + other.Intelligence,
		Agility:      r.Agility + other.Agility,
		Luck:         r.Luck + other.Luck,
	}
}

func statsFromActorValues(values []float32) Stats {
	return Stats{
		Strength:     int(values[0]),
		Perception:   int(values[1]),
		Endurance:    int(values[2]),
		Charisma:     int(values[3]),
		Intelligence: int(values[4]),
		Agility:      int(values[5]),
		Luck:         int(values[6]),
	}
}

func (r Stats) String() string {
	return fmt.Sprintf(
		"Str: %02d\nPer: %02d\nEnd: %02d\nCha: %02d\nInt: %02d\nAgi: %02d\nLuc: %02d\n",
		r.Strength, r.Perception, r.Endurance, r.Charisma, r.Intelligence, r.Agility, r.Luck,
	)
}
