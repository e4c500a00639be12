package dstats

type (
	MiscStats struct {
		QuestsCompleted          int32 `json:"quests_completed"`
		LocationsDiscovered      int32 `json:"locations_discovered"`
		PeopleKilled             int32 `json:"people_killed"`
		CreaturesKilled          int32 `json:"creatures_killed"`
		LocksPicked              int32 `json:"locks_picked"`
		ComputersHacked          int32 `json:"computers_hacked"`
		StimpaksTaken            int32 `json:"stimpaks_taken"`
		RadXTaken                int32 `json:"rad_x_taken"`
		RadAwayTaken             int32 `json:"rad_away_taken"`
		ChemsTaken               int32 `json:"chems_taken"`
		TimesAddicted            int32 `json:"times_addicted"`
		MinesDisarmed            int32 `json:"mines_disarmed"`
		SpeechSuccesses          int32 `json:"speech_successes"`
		PocketsPicked            int32 `json:"pockets_picked"`
		PantsExploded            int32 `json:"pants_exploded"`
		BooksRead                int32 `json:"books_read"`
		BobbleheadsFound         int32 `json:"bobbleheads_found"`
		WeaponsCreated           int32 `json:"weapons_created"`
		PeopleMezzed             int32 `json:"people_mezzed"`
		CaptivesRescued          int32 `json:"captives_rescued"`
		SandmanKills             int32 `json:"sandman_kills"`
		ParalyzingPunches        int32 `json:"paralyzing_punches"`
		RobotsDisabled           int32 `json:"robots_disabled"`
		ContractsCompleted       int32 `json:"contracts_completed"`
		CorpsesEaten             int32 `json:"corpses_eaten"`
		MysteriousStrangerVisits int32 `json:"mysterious_stranger_visits"`
	}
)

const (
	// misc stats are always the first global of table 1
	GlobalType = int32(0)
	StructSize = int32(0x87)
	NumStats   = int32(26)
)
