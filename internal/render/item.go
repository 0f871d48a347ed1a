package render

import "fmt"

// ItemKind is the resource or marker an Item stands for
type ItemKind int

const (
	ItemTemperature ItemKind = iota
	ItemOceans
	ItemOxygen
	ItemVenus
	ItemPlants
	ItemMicrobes
	ItemAnimals
	ItemHeat
	ItemEnergy
	ItemTitanium
	ItemSteel
	ItemMegacredits
	ItemCards
	ItemFloaters
	ItemEvent
	ItemSpace
	ItemTrade
	ItemTradeDiscount
	ItemInfluence
)

var itemKindNames = map[ItemKind]string{
	ItemTemperature:   "temperature",
	ItemOceans:        "oceans",
	ItemOxygen:        "oxygen",
	ItemVenus:         "venus",
	ItemPlants:        "plants",
	ItemMicrobes:      "microbes",
	ItemAnimals:       "animals",
	ItemHeat:          "heat",
	ItemEnergy:        "energy",
	ItemTitanium:      "titanium",
	ItemSteel:         "steel",
	ItemMegacredits:   "megacredits",
	ItemCards:         "cards",
	ItemFloaters:      "floaters",
	ItemEvent:         "event",
	ItemSpace:         "space",
	ItemTrade:         "trade",
	ItemTradeDiscount: "trade_discount",
	ItemInfluence:     "influence",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("item(%d)", int(k))
}

// ParseItemKind looks up an item kind by its String form
func ParseItemKind(name string) (ItemKind, bool) {
	for k, n := range itemKindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Item is a quantified resource or marker icon.
// Renderers branch on the four presentation flags, so their meaning is fixed:
// AmountInside draws the amount inside the icon shape, ShowDigit forces a
// numeric overlay, AnyPlayer marks an effect on any player and IsPlayed selects
// the played (round) form of the icon. Markers carry no amount at all.
type Item struct {
	Kind         ItemKind
	Amount       int
	IsMarker     bool
	AmountInside bool
	ShowDigit    bool
	AnyPlayer    bool
	IsPlayed     bool
}

// NewItem creates an item of the given kind and amount
func NewItem(kind ItemKind, amount int) Item {
	return Item{Kind: kind, Amount: amount}
}

// Marker creates an item that carries no amount
func Marker(kind ItemKind) Item {
	return Item{Kind: kind, IsMarker: true}
}

// HasAmount reports whether the item carries a quantity
func (i Item) HasAmount() bool {
	return !i.IsMarker
}

// NodeKind implements Node
func (Item) NodeKind() NodeKind { return NodeItem }

func (i Item) String() string {
	if !i.HasAmount() {
		return i.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", i.Kind, i.Amount)
}
