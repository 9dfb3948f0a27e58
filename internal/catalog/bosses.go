package catalog

// BossDialogue holds the scripted lines surfaced at encounter milestones:
// intro at combat start, victory when the boss falls, defeat when the party
// does, and lowHealth once when the boss drops below 30% HP.
type BossDialogue struct {
	Intro     []string `json:"intro"`
	Victory   []string `json:"victory"`
	Defeat    []string `json:"defeat"`
	LowHealth []string `json:"low_health"`
}

var bossDialogues = map[string]*BossDialogue{
	"the_archivist": {
		Intro: []string{
			"The Archivist does not look up from its ledger.",
			"\"You are already catalogued. This is a formality.\"",
		},
		Victory: []string{
			"The ledger burns from the inside out.",
			"\"Unrecorded... how... liberating.\"",
		},
		Defeat: []string{
			"\"Filed, as foretold.\"",
		},
		LowHealth: []string{
			"Pages tear loose and circle like gulls.",
			"\"You would unwrite ME?\"",
		},
	},
	"mother_of_threads": {
		Intro: []string{
			"Silk drifts down from a ceiling you cannot see.",
			"\"Come closer. Every thread ends here.\"",
		},
		Victory: []string{
			"The web sags, then falls as dust.",
		},
		Defeat: []string{
			"\"Rest now. You are woven in.\"",
		},
		LowHealth: []string{
			"\"Cut one thread and a thousand tighten.\"",
		},
	},
	"the_fractured_king": {
		Intro: []string{
			"A crown in six pieces orbits an empty throne.",
			"\"We were whole once. So were you.\"",
		},
		Victory: []string{
			"The crown pieces fall, and for a moment the dungeon is quiet.",
			"\"...whole...\"",
		},
		Defeat: []string{
			"\"Another shard for the crown.\"",
		},
		LowHealth: []string{
			"The throne room splits along lines that were always there.",
			"\"FRACTURE WITH US.\"",
		},
	},
}

// GetBossDialogue returns the dialogue block for a boss id, or nil when
// the boss has no scripted lines.
func GetBossDialogue(bossID string) *BossDialogue {
	return bossDialogues[bossID]
}

// bossLoot maps boss ids to their guaranteed drops.
var bossLoot = map[string][]string{
	"the_archivist":      {"index_of_names"},
	"mother_of_threads":  {"spool_of_living_silk", "silver_needle"},
	"the_fractured_king": {"crown_shard"},
}

// BossLoot returns the guaranteed drops for a boss id.
func BossLoot(bossID string) []string {
	return bossLoot[bossID]
}
