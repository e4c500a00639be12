package dstats

import (
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/dlocation"
	"github.com/lxhmsk/fallout-3-save-analyzer/fos/lbytes"
	"github.com/pkg/errors"
)

func Decode(reader *lbytes.Reader, directory dlocation.Directory) (*MiscStats, error) {
	if err := reader.Seek(int(directory.GlobalDataTable1Address)); err != nil {
		return nil, errors.Wrap(err, "dstats.Decode error")
	}

	stats := MiscStats{}
	readInt := func(into *int32) lbytes.ReadFunction {
		return lbytes.CreateIntReadFunction(reader, true, into)
	}
	instructions := []lbytes.Instruction{
		{Key: "global_type", ReadFunction: lbytes.CreateAssertIntReadFunction(reader, GlobalType, false)},
		{Key: "struct_size", ReadFunction: lbytes.CreateAssertIntReadFunction(reader, StructSize, false)},
		{Key: "num_stats", ReadFunction: lbytes.CreateAssertIntReadFunction(reader, NumStats, true)},
		{Key: "quests_completed", ReadFunction: readInt(&stats.QuestsCompleted)},
		{Key: "locations_discovered", ReadFunction: readInt(&stats.LocationsDiscovered)},
		{Key: "people_killed", ReadFunction: readInt(&stats.PeopleKilled)},
		{Key: "creatures_killed", ReadFunction: readInt(&stats.CreaturesKilled)},
		{Key: "locks_picked", ReadFunction: readInt(&stats.LocksPicked)},
		{Key: "computers_hacked", ReadFunction: readInt(&stats.ComputersHacked)},
		{Key: "stimpaks_taken", ReadFunction: readInt(&stats.StimpaksTaken)},
		{Key: "rad_x_taken", ReadFunction: readInt(&stats.RadXTaken)},
		{Key: "rad_away_taken", ReadFunction: readInt(&stats.RadAwayTaken)},
		{Key: "chems_taken", ReadFunction: readInt(&stats.ChemsTaken)},
		{Key: "times_addicted", ReadFunction: readInt(&stats.TimesAddicted)},
		{Key: "mines_disarmed", ReadFunction: readInt(&stats.MinesDisarmed)},
		{Key: "speech_successes", ReadFunction: readInt(&stats.SpeechSuccesses)},
		{Key: "pockets_picked", ReadFunction: readInt(&stats.PocketsPicked)},
		{Key: "pants_exploded", ReadFunction: readInt(&stats.PantsExploded)},
		{Key: "books_read", ReadFunction: readInt(&stats.BooksRead)},
		{Key: "bobbleheads_found", ReadFunction: readInt(&stats.BobbleheadsFound)},
		{Key: "weapons_created", ReadFunction: readInt(&stats.WeaponsCreated)},
		{Key: "people_mezzed", ReadFunction: readInt(&stats.PeopleMezzed)},
		{Key: "captives_rescued", ReadFunction: readInt(&stats.CaptivesRescued)},
		{Key: "sandman_kills", ReadFunction: readInt(&stats.SandmanKills)},
		{Key: "paralyzing_punches", ReadFunction: readInt(&stats.ParalyzingPunches)},
		{Key: "robots_disabled", ReadFunction: readInt(&stats.RobotsDisabled)},
		{Key: "contracts_completed", ReadFunction: readInt(&stats.ContractsCompleted)},
		{Key: "corpses_eaten", ReadFunction: readInt(&stats.CorpsesEaten)},
		{Key: "mysterious_stranger_visits", ReadFunction: readInt(&stats.MysteriousStrangerVisits)},
	}
	if err := lbytes.ExecuteInstructions(instructions); err != nil {
		return nil, errors.Wrap(err, "dstats.Decode error")
	}

	return &stats, nil
}
