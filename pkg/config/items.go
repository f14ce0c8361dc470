package config

import "github.com/gonewx/survivor/pkg/types"

// ItemDefinition is the static description of an item.
type ItemDefinition struct {
	ID       types.ItemID
	Kind     types.ItemKind
	MaxLevel int
	// Consumable items apply once when granted and never take a slot.
	Consumable bool
}

// ItemEffect is what one item contributes to the player's stats at a level.
// Increases are fractions of the base value.
type ItemEffect struct {
	MoveSpeedIncrease       float64
	AttackPowerIncrease     float64
	ProjectileSpeedIncrease float64
	ProjectileSizeIncrease  float64
	MaxHealthIncrease       int

	// periodic invulnerability jump; zero cooldown means none
	JumpCooldown float64
	JumpDuration float64

	// fraction of maximum health restored on pickup
	InstantHeal float64
}

var itemDefinitions = [types.ItemIDCount]ItemDefinition{
	types.ItemSoccerBall:      {ID: types.ItemSoccerBall, Kind: types.ItemKindWeapon, MaxLevel: 5},
	types.ItemBasketball:      {ID: types.ItemBasketball, Kind: types.ItemKindWeapon, MaxLevel: 5},
	types.ItemBaseballBat:     {ID: types.ItemBaseballBat, Kind: types.ItemKindWeapon, MaxLevel: 5},
	types.ItemSoccerShoes:     {ID: types.ItemSoccerShoes, Kind: types.ItemKindAbility, MaxLevel: 5},
	types.ItemBasketballShoes: {ID: types.ItemBasketballShoes, Kind: types.ItemKindAbility, MaxLevel: 5},
	types.ItemRedGinseng:      {ID: types.ItemRedGinseng, Kind: types.ItemKindAbility, MaxLevel: 1, Consumable: true},
	types.ItemMilk:            {ID: types.ItemMilk, Kind: types.ItemKindAbility, MaxLevel: 1, Consumable: true},
}

// Item returns the definition of id. Unknown ids report false.
func Item(id types.ItemID) (ItemDefinition, bool) {
	if !id.Valid() {
		return ItemDefinition{}, false
	}
	return itemDefinitions[id], true
}

// ItemEffectAt returns the stat contribution of id at level. Levels are
// clamped to [1, MaxLevel].
func ItemEffectAt(id types.ItemID, level int) ItemEffect {
	def, ok := Item(id)
	if !ok {
		return ItemEffect{}
	}
	if level < 1 {
		level = 1
	}
	if level > def.MaxLevel {
		level = def.MaxLevel
	}
	lv := float64(level)

	switch id {
	case types.ItemSoccerBall:
		return ItemEffect{ProjectileSpeedIncrease: 0.1 * lv}
	case types.ItemBasketball:
		return ItemEffect{ProjectileSizeIncrease: 0.15 * lv}
	case types.ItemBaseballBat:
		return ItemEffect{AttackPowerIncrease: 0.2 * lv}
	case types.ItemSoccerShoes:
		// 10% at level 1, +5% per level after
		return ItemEffect{MoveSpeedIncrease: 0.10 + 0.05*(lv-1)}
	case types.ItemBasketballShoes:
		return ItemEffect{JumpCooldown: 10.0 - (lv - 1), JumpDuration: 1.0}
	case types.ItemRedGinseng:
		return ItemEffect{InstantHeal: 0.5}
	case types.ItemMilk:
		return ItemEffect{InstantHeal: 0.1}
	}
	return ItemEffect{}
}
