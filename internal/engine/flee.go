package engine

import (
	"fmt"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// attemptFlee rolls the party's escape chance. Boss fights refuse the
// attempt outright, without consuming a roll. The chance scales with the
// focus gap between the sides and stays inside [0.10, 0.95] so escape is
// never guaranteed and never impossible.
func (tc *turnContext) attemptFlee() {
	s := tc.s
	if s.IsBossFight {
		s.AddLog(game.LogSystem, "There is no escape from this fight!")
		return
	}
	chance := clampFloat(0.40+0.03*(s.Party.AverageFocus()-s.Encounter.AverageFocus()), 0.10, 0.95)
	if s.RNG.Float64() < chance {
		s.AddLog(game.LogSystem, "The party flees into the dark!")
		s.Phase = game.PhaseFled
		return
	}
	s.AddLog(game.LogSystem, fmt.Sprintf("The party fails to escape (%d%% chance).", int(chance*100)))
}
