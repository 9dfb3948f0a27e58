package catalog

import (
	"fmt"
	"strings"
)

// RegisterEnemy adds an enemy template loaded from configuration. Duplicate
// ids and dangling ability references are rejected so a bad config fails at
// startup instead of mid-combat.
func RegisterEnemy(e Enemy) error {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return fmt.Errorf("enemy entry missing 'id'")
	}
	if _, exists := enemies[id]; exists {
		return fmt.Errorf("duplicate enemy id '%s'", id)
	}
	if e.Stats.MaxHP <= 0 {
		return fmt.Errorf("enemy '%s': max_hp must be positive", id)
	}
	for _, aid := range e.AbilityIDs {
		if GetAbility(aid) == nil {
			return fmt.Errorf("enemy '%s': unknown ability id '%s'", id, aid)
		}
	}
	cp := e
	cp.ID = id
	if cp.Stats.HP == 0 {
		cp.Stats.HP = cp.Stats.MaxHP
	}
	enemies[id] = &cp
	return nil
}

// RegisterAbility adds an ability loaded from configuration.
func RegisterAbility(a Ability) error {
	id := strings.TrimSpace(a.ID)
	if id == "" {
		return fmt.Errorf("ability entry missing 'id'")
	}
	if _, exists := abilities[id]; exists {
		return fmt.Errorf("duplicate ability id '%s'", id)
	}
	if len(a.Effects) == 0 {
		return fmt.Errorf("ability '%s': effect list is empty", id)
	}
	switch a.Target {
	case TargetSelf, TargetAlly, TargetAllAllies, TargetEnemy, TargetAllEnemies, TargetAll:
	default:
		return fmt.Errorf("ability '%s': unknown target shape '%s'", id, a.Target)
	}
	cp := a
	cp.ID = id
	abilities[id] = &cp
	return nil
}

// RegisterItem adds a consumable loaded from configuration. Registered
// items also join the consumable drop pool.
func RegisterItem(it Item) error {
	id := strings.TrimSpace(it.ID)
	if id == "" {
		return fmt.Errorf("item entry missing 'id'")
	}
	if _, exists := items[id]; exists {
		return fmt.Errorf("duplicate item id '%s'", id)
	}
	switch it.Kind {
	case ItemHeal, ItemSanity, ItemCure, ItemBomb, ItemSmokeBomb:
	default:
		return fmt.Errorf("item '%s': unknown kind '%s'", id, it.Kind)
	}
	cp := it
	cp.ID = id
	items[id] = &cp
	consumableDrops = append(consumableDrops, id)
	return nil
}
