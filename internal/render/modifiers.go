package render

import "fmt"

// lastItem returns the index and value of the item ending the active row
func (b *Builder) lastItem(op string) (int, Item, bool) {
	if !b.ready(op) {
		return 0, Item{}, false
	}
	row := b.rows[b.active]
	if len(row) == 0 {
		b.fail(newError(CodeMissingNode, op, "", fmt.Sprintf("called %q without an item", op)))
		return 0, Item{}, false
	}
	idx := len(row) - 1
	it, ok := row[idx].(Item)
	if !ok {
		b.fail(newError(CodeTypeMismatch, op, "", fmt.Sprintf("%q applies to items only, got %s", op, row[idx].NodeKind())))
		return 0, Item{}, false
	}
	return idx, it, true
}

func (b *Builder) modify(op string, set func(*Item)) *Builder {
	idx, it, ok := b.lastItem(op)
	if !ok {
		return b
	}
	set(&it)
	b.rows[b.active][idx] = it
	return b
}

// Any marks the last item as affecting any player
func (b *Builder) Any() *Builder {
	return b.modify("any", func(it *Item) { it.AnyPlayer = true })
}

// Played marks the last item as played, e.g. Titanium(1).Played() draws a
// round resource instead of a square one.
func (b *Builder) Played() *Builder {
	return b.modify("played", func(it *Item) { it.IsPlayed = true })
}

// Digit forces the amount of the last item to be drawn as a number
func (b *Builder) Digit() *Builder {
	return b.modify("digit", func(it *Item) { it.ShowDigit = true })
}

// Brackets wraps the last item in a pair of bracket symbols
func (b *Builder) Brackets() *Builder {
	idx, it, ok := b.lastItem("brackets")
	if !ok {
		return b
	}
	row := b.rows[b.active][:idx]
	row = append(row, NewSymbol(SymbolBracketOpen), it, NewSymbol(SymbolBracketClose))
	b.rows[b.active] = row
	return b
}

// StartEffect ends the cause row, adds a colon delimiter row and opens the effect row
func (b *Builder) StartEffect() *Builder {
	return b.Br().add("startEffect", NewSymbol(SymbolColon)).Br()
}

// StartAction is StartEffect with an arrow delimiter
func (b *Builder) StartAction() *Builder {
	return b.Br().add("startAction", NewSymbol(SymbolArrow)).Br()
}
