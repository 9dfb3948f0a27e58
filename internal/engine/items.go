package engine

import (
	"fmt"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// execItem consumes one unit from the shared inventory and applies the
// item's hardcoded effect. Unknown ids and empty stock are silent no-ops,
// so the action slot is not wasted on a bad submission.
func (tc *turnContext) execItem(entry *game.TurnOrderEntry, action game.CombatAction) {
	s := tc.s
	item := catalog.GetItem(action.ItemID)
	if item == nil {
		return
	}
	if !s.Party.ConsumeItem(item.ID) {
		return
	}
	userName := s.ActorName(entry)
	s.AddLog(game.LogInfo, userName+" uses "+item.Name+".")

	switch item.Kind {
	case catalog.ItemHeal:
		idx := action.TargetIndex
		if idx < 0 || idx >= len(s.Party.Members) {
			idx = entry.Index
		}
		m := s.Party.Members[idx]
		if healed := m.ApplyHeal(item.Value); healed > 0 {
			s.AddLog(game.LogHeal, fmt.Sprintf("%s recovers %d HP.", m.Name, healed))
		}
	case catalog.ItemSanity:
		idx := action.TargetIndex
		if idx < 0 || idx >= len(s.Party.Members) {
			idx = entry.Index
		}
		m := s.Party.Members[idx]
		if restored := m.ApplySanityHeal(item.Value); restored > 0 {
			s.AddLog(game.LogHeal, fmt.Sprintf("%s regains %d sanity.", m.Name, restored))
		}
	case catalog.ItemCure:
		idx := action.TargetIndex
		if idx < 0 || idx >= len(s.Party.Members) {
			idx = entry.Index
		}
		m := s.Party.Members[idx]
		m.ClearAllStatuses()
		s.AddLog(game.LogStatus, m.Name+" is cleansed of all afflictions.")
	case catalog.ItemBomb:
		for _, i := range s.Encounter.LivingEnemies() {
			e := s.Encounter.Enemies[i]
			s.AddLog(game.LogDamage, fmt.Sprintf("%s takes %d damage from the blast.", e.Name, item.Value))
			tc.damageEnemy(i, item.Value)
		}
	case catalog.ItemSmokeBomb:
		if s.IsBossFight {
			s.AddLog(game.LogSystem, "The smoke disperses. There is no escape from this fight!")
			return
		}
		s.AddLog(game.LogSystem, "The party slips away under cover of smoke!")
		s.Phase = game.PhaseFled
	}
}
