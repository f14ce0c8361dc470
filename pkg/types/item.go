package types

// ItemID identifies an item the player can carry or consume.
type ItemID int

const (
	// ItemUnknown is the zero value and never granted.
	ItemUnknown ItemID = iota

	ItemSoccerBall
	ItemBasketball
	ItemBaseballBat
	ItemSoccerShoes
	ItemBasketballShoes
	ItemRedGinseng
	ItemMilk

	itemIDEnd
)

// ItemIDCount is the size of tables indexed by ItemID.
const ItemIDCount = int(itemIDEnd)

var itemNames = [...]string{
	ItemUnknown:         "unknown",
	ItemSoccerBall:      "soccer_ball",
	ItemBasketball:      "basketball",
	ItemBaseballBat:     "baseball_bat",
	ItemSoccerShoes:     "soccer_shoes",
	ItemBasketballShoes: "basketball_shoes",
	ItemRedGinseng:      "red_ginseng",
	ItemMilk:            "milk",
}

func (id ItemID) String() string {
	if id < 0 || id >= itemIDEnd {
		return "unknown"
	}
	return itemNames[id]
}

// Valid reports whether id names a real item.
func (id ItemID) Valid() bool {
	return id > ItemUnknown && id < itemIDEnd
}

// ParseItemID maps a name back to its ItemID.
func ParseItemID(name string) (ItemID, bool) {
	for id := ItemSoccerBall; id < itemIDEnd; id++ {
		if itemNames[id] == name {
			return id, true
		}
	}
	return ItemUnknown, false
}

// AllItemIDs returns every item in declaration order.
func AllItemIDs() []ItemID {
	ids := make([]ItemID, 0, ItemIDCount-1)
	for id := ItemSoccerBall; id < itemIDEnd; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ItemKind separates weapons from abilities.
type ItemKind int

const (
	ItemKindWeapon ItemKind = iota
	ItemKindAbility
)

func (k ItemKind) String() string {
	if k == ItemKindWeapon {
		return "weapon"
	}
	return "ability"
}
