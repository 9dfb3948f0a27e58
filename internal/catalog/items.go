package catalog

// ItemKind selects the hardcoded effect applied when a consumable is used
// in combat.
type ItemKind string

const (
	ItemHeal      ItemKind = "heal"
	ItemSanity    ItemKind = "sanity-restore"
	ItemCure      ItemKind = "cure-status"
	ItemBomb      ItemKind = "damage-bomb"
	ItemSmokeBomb ItemKind = "smoke-bomb"
)

// Item is a consumable definition. Value is the heal/restore/damage amount
// for the kinds that use one.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Kind        ItemKind `json:"kind"`
	Value       int      `json:"value,omitempty"`
}

var items = map[string]*Item{
	"laudanum": {
		ID: "laudanum", Name: "Laudanum",
		Description: "Dulls the pain enough to keep fighting.",
		Kind:        ItemHeal, Value: 12,
	},
	"sedative_tonic": {
		ID: "sedative_tonic", Name: "Sedative Tonic",
		Description: "Quiets the voices for a while.",
		Kind:        ItemSanity, Value: 10,
	},
	"purifying_salts": {
		ID: "purifying_salts", Name: "Purifying Salts",
		Description: "Burns away poison, rot and dread alike.",
		Kind:        ItemCure,
	},
	"blasting_charge": {
		ID: "blasting_charge", Name: "Blasting Charge",
		Description: "Mining equipment, repurposed.",
		Kind:        ItemBomb, Value: 10,
	},
	"smoke_bomb": {
		ID: "smoke_bomb", Name: "Smoke Bomb",
		Description: "Covers a hasty retreat.",
		Kind:        ItemSmokeBomb,
	},
}

// consumableDrops is the pool rolled for post-victory consumable loot.
var consumableDrops = []string{
	"laudanum",
	"sedative_tonic",
	"purifying_salts",
	"blasting_charge",
	"smoke_bomb",
}

// GetItem returns the item for id, or nil when unknown.
func GetItem(id string) *Item {
	return items[id]
}

// ConsumableDrops returns the loot pool for consumable drops.
func ConsumableDrops() []string {
	return consumableDrops
}

// Equipment is a depth-tiered equipment definition used for non-boss loot.
type Equipment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MinDepth int    `json:"min_depth"`
}

var equipment = []Equipment{
	{ID: "rusted_saber", Name: "Rusted Saber", MinDepth: 1},
	{ID: "miners_lantern", Name: "Miner's Lantern", MinDepth: 1},
	{ID: "oilskin_coat", Name: "Oilskin Coat", MinDepth: 2},
	{ID: "surgeons_kit", Name: "Surgeon's Kit", MinDepth: 3},
	{ID: "blessed_bayonet", Name: "Blessed Bayonet", MinDepth: 4},
	{ID: "whispering_amulet", Name: "Whispering Amulet", MinDepth: 5},
	{ID: "plate_of_the_drowned", Name: "Plate of the Drowned", MinDepth: 7},
	{ID: "sunless_mirror", Name: "Sunless Mirror", MinDepth: 9},
}

// EquipmentForDepth returns the pool of equipment eligible to drop at the
// given depth (everything unlocked at or below it).
func EquipmentForDepth(depth int) []Equipment {
	out := make([]Equipment, 0, len(equipment))
	for _, e := range equipment {
		if e.MinDepth <= depth {
			out = append(out, e)
		}
	}
	return out
}
