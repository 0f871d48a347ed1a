package render

import "fmt"

// Acceptor decides which node kinds a builder may append
type Acceptor func(NodeKind) bool

// AcceptKinds returns an Acceptor for exactly the given kinds
func AcceptKinds(kinds ...NodeKind) Acceptor {
	set := make(map[NodeKind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return func(k NodeKind) bool { return set[k] }
}

// DefaultAcceptor returns the node kinds each tree variant may hold
func DefaultAcceptor(kind TreeKind) Acceptor {
	switch kind {
	case KindProduction:
		return AcceptKinds(NodeItem, NodeSymbol)
	case KindEffect:
		return AcceptKinds(NodeItem, NodeSymbol, NodeProduction, NodeText)
	default:
		return AcceptKinds(NodeItem, NodeSymbol, NodeProduction, NodeEffect, NodeText)
	}
}

// Builder assembles a Tree row by row. Operations chain; the first failure
// is kept, later operations do nothing and Build returns it.
//
// The zero value has no rows, so every operation except Br fails until a row
// is opened. Use NewBuilder or one of the Build functions instead.
type Builder struct {
	kind   TreeKind
	accept Acceptor
	rows   []Row
	active int
	built  bool
	err    error
}

// NewBuilder returns a builder for the given tree variant holding one empty row.
// A nil accept uses DefaultAcceptor(kind).
func NewBuilder(kind TreeKind, accept Acceptor) *Builder {
	return &Builder{
		kind:   kind,
		accept: accept,
		rows:   []Row{{}},
	}
}

// Build runs configure against a fresh card builder and returns the tree
func Build(configure func(*Builder)) (*Tree, error) {
	return run(KindCard, configure)
}

// BuildProduction runs configure against a fresh production box builder
func BuildProduction(configure func(*Builder)) (*Tree, error) {
	return run(KindProduction, configure)
}

// BuildEffect runs configure against a fresh effect builder. The effect shape
// is not checked here; the Tree accessors check it on every read.
func BuildEffect(configure func(*Builder)) (*Tree, error) {
	return run(KindEffect, configure)
}

// MustBuild is like Build but panics on error. It is meant for card
// definitions, where a failure is an authoring mistake.
func MustBuild(configure func(*Builder)) *Tree {
	t, err := Build(configure)
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	return t
}

func run(kind TreeKind, configure func(*Builder)) (*Tree, error) {
	b := NewBuilder(kind, nil)
	configure(b)
	return b.Build()
}

// Build freezes the rows into a Tree. The builder must not be used afterwards.
func (b *Builder) Build() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, newError(CodeStructuralPrecondition, "build", "", "builder already built")
	}
	t := &Tree{kind: b.kind, rows: b.rows}
	b.rows = nil
	b.active = 0
	b.built = true
	return t, nil
}

// Err returns the first failure recorded by the builder
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *Builder) accepts(k NodeKind) bool {
	if b.accept == nil {
		b.accept = DefaultAcceptor(b.kind)
	}
	return b.accept(k)
}

// ready checks the sticky error and that there is a row to write to
func (b *Builder) ready(op string) bool {
	if b.err != nil {
		return false
	}
	if len(b.rows) == 0 {
		b.fail(newError(CodeStructuralPrecondition, op, "no items in builder", ""))
		return false
	}
	return true
}

func (b *Builder) add(op string, n Node) *Builder {
	if !b.ready(op) {
		return b
	}
	if !b.accepts(n.NodeKind()) {
		return b.fail(newError(CodeNodeRejected, op, "", fmt.Sprintf("%s builder does not accept %s", b.kind, n.NodeKind())))
	}
	b.rows[b.active] = append(b.rows[b.active], n)
	return b
}

func (b *Builder) item(op string, kind ItemKind, amount int) *Builder {
	return b.add(op, NewItem(kind, amount))
}

func (b *Builder) Temperature(amount int) *Builder {
	return b.item("temperature", ItemTemperature, amount)
}

func (b *Builder) Oceans(amount int) *Builder {
	return b.item("oceans", ItemOceans, amount)
}

func (b *Builder) Oxygen(amount int) *Builder {
	return b.item("oxygen", ItemOxygen, amount)
}

func (b *Builder) Venus(amount int) *Builder {
	return b.item("venus", ItemVenus, amount)
}

func (b *Builder) Plants(amount int) *Builder {
	return b.item("plants", ItemPlants, amount)
}

func (b *Builder) Microbes(amount int) *Builder {
	return b.item("microbes", ItemMicrobes, amount)
}

func (b *Builder) Animals(amount int) *Builder {
	return b.item("animals", ItemAnimals, amount)
}

func (b *Builder) Heat(amount int) *Builder {
	return b.item("heat", ItemHeat, amount)
}

func (b *Builder) Energy(amount int) *Builder {
	return b.item("energy", ItemEnergy, amount)
}

func (b *Builder) Titanium(amount int) *Builder {
	return b.item("titanium", ItemTitanium, amount)
}

func (b *Builder) Steel(amount int) *Builder {
	return b.item("steel", ItemSteel, amount)
}

// Megacredits draws the amount inside the coin
func (b *Builder) Megacredits(amount int) *Builder {
	it := NewItem(ItemMegacredits, amount)
	it.AmountInside = true
	return b.add("megacredits", it)
}

func (b *Builder) Cards(amount int) *Builder {
	return b.item("cards", ItemCards, amount)
}

func (b *Builder) Floaters(amount int) *Builder {
	return b.item("floaters", ItemFloaters, amount)
}

func (b *Builder) Event() *Builder {
	return b.add("event", Marker(ItemEvent))
}

func (b *Builder) Space() *Builder {
	return b.add("space", Marker(ItemSpace))
}

func (b *Builder) Trade() *Builder {
	return b.add("trade", Marker(ItemTrade))
}

// TradeDiscount stores the discount as a negative amount drawn inside the icon
func (b *Builder) TradeDiscount(amount int) *Builder {
	it := NewItem(ItemTradeDiscount, -amount)
	it.AmountInside = true
	return b.add("tradeDiscount", it)
}

func (b *Builder) Influence(amount int) *Builder {
	return b.item("influence", ItemInfluence, amount)
}

// Description appends a text node to the active row
func (b *Builder) Description(text string) *Builder {
	return b.add("description", Text(text))
}

// Or appends an "OR" symbol. Like every symbol operation it only needs a row
// to exist; the row may be empty.
func (b *Builder) Or(size ...Size) *Builder {
	return b.add("or", NewSymbol(SymbolOr, size...))
}

func (b *Builder) Asterix(size ...Size) *Builder {
	return b.add("asterix", NewSymbol(SymbolAsterix, size...))
}

func (b *Builder) Plus(size ...Size) *Builder {
	return b.add("plus", NewSymbol(SymbolPlus, size...))
}

func (b *Builder) Minus(size ...Size) *Builder {
	return b.add("minus", NewSymbol(SymbolMinus, size...))
}

func (b *Builder) Slash(size ...Size) *Builder {
	return b.add("slash", NewSymbol(SymbolSlash, size...))
}

func (b *Builder) Empty(size ...Size) *Builder {
	return b.add("empty", NewSymbol(SymbolEmpty, size...))
}

// Br opens a new empty row and makes it the active row
func (b *Builder) Br() *Builder {
	if b.err != nil {
		return b
	}
	b.rows = append(b.rows, Row{})
	b.active = len(b.rows) - 1
	return b
}

// ProductionBox builds a nested production box and appends it as one node
func (b *Builder) ProductionBox(configure func(*Builder)) *Builder {
	return b.box("productionBox", KindProduction, configure)
}

// EffectBox builds a nested effect and appends it as one node
func (b *Builder) EffectBox(configure func(*Builder)) *Builder {
	return b.box("effectBox", KindEffect, configure)
}

func (b *Builder) box(op string, kind TreeKind, configure func(*Builder)) *Builder {
	if !b.ready(op) {
		return b
	}
	nk := (&Tree{kind: kind}).NodeKind()
	if !b.accepts(nk) {
		return b.fail(newError(CodeNodeRejected, op, "", fmt.Sprintf("%s builder does not accept %s", b.kind, nk)))
	}
	t, err := run(kind, configure)
	if err != nil {
		return b.fail(fmt.Errorf("%s: %w", op, err))
	}
	return b.add(op, t)
}
