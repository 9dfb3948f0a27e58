package game

// CharacterState is a persistent party member. Created once at party
// formation and mutated for the rest of the run; death flips Alive but the
// record is never destroyed.
type CharacterState struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Archetype  string   `json:"archetype"`
	Level      int      `json:"level"`
	Experience int      `json:"experience"`
	AbilityIDs []string `json:"ability_ids"`
	Vitals
}

// Party is the player's roster plus the shared consumable inventory.
type Party struct {
	Members   []*CharacterState `json:"members"`
	Inventory map[string]int    `json:"inventory"`
}

// AddItem adds n units of an item to the shared inventory.
func (p *Party) AddItem(id string, n int) {
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	p.Inventory[id] += n
}

// ConsumeItem removes one unit of an item. Returns false when the party
// does not carry it.
func (p *Party) ConsumeItem(id string) bool {
	if p.Inventory == nil || p.Inventory[id] <= 0 {
		return false
	}
	p.Inventory[id]--
	if p.Inventory[id] == 0 {
		delete(p.Inventory, id)
	}
	return true
}

// LivingMembers returns the indices of party members still alive.
func (p *Party) LivingMembers() []int {
	out := make([]int, 0, len(p.Members))
	for i, m := range p.Members {
		if m.Alive {
			out = append(out, i)
		}
	}
	return out
}

// Defeated reports whether every party member is down.
func (p *Party) Defeated() bool {
	for _, m := range p.Members {
		if m.Alive {
			return false
		}
	}
	return true
}

// AverageFocus is used by the flee-chance formula.
func (p *Party) AverageFocus() float64 {
	living := 0
	total := 0
	for _, m := range p.Members {
		if m.Alive {
			living++
			total += m.Stats.Focus
		}
	}
	if living == 0 {
		return 0
	}
	return float64(total) / float64(living)
}
