package render

import "fmt"

// SymbolKind is one glyph of the fixed symbol vocabulary
type SymbolKind int

const (
	SymbolOr SymbolKind = iota
	SymbolAsterix
	SymbolPlus
	SymbolMinus
	SymbolSlash
	SymbolEmpty
	SymbolBracketOpen
	SymbolBracketClose
	SymbolColon
	SymbolArrow
)

var symbolGlyphs = map[SymbolKind]string{
	SymbolOr:           "OR",
	SymbolAsterix:      "*",
	SymbolPlus:         "+",
	SymbolMinus:        "-",
	SymbolSlash:        "/",
	SymbolEmpty:        " ",
	SymbolBracketOpen:  "(",
	SymbolBracketClose: ")",
	SymbolColon:        ":",
	SymbolArrow:        "->",
}

// Glyph returns the textual glyph of the symbol kind
func (k SymbolKind) Glyph() string {
	if g, ok := symbolGlyphs[k]; ok {
		return g
	}
	return "?"
}

func (k SymbolKind) String() string {
	switch k {
	case SymbolOr:
		return "or"
	case SymbolAsterix:
		return "asterix"
	case SymbolPlus:
		return "plus"
	case SymbolMinus:
		return "minus"
	case SymbolSlash:
		return "slash"
	case SymbolEmpty:
		return "empty"
	case SymbolBracketOpen:
		return "bracket-open"
	case SymbolBracketClose:
		return "bracket-close"
	case SymbolColon:
		return "colon"
	case SymbolArrow:
		return "arrow"
	default:
		return fmt.Sprintf("symbol(%d)", int(k))
	}
}

// Size is the drawing size of a symbol
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return fmt.Sprintf("size(%d)", int(s))
	}
}

// Symbol is a glyph drawn at a given size
type Symbol struct {
	Kind SymbolKind
	Size Size
}

// NewSymbol creates a symbol, using SizeMedium when no size is given
func NewSymbol(kind SymbolKind, size ...Size) Symbol {
	s := Symbol{Kind: kind, Size: SizeMedium}
	if len(size) > 0 {
		s.Size = size[0]
	}
	return s
}

// NodeKind implements Node
func (Symbol) NodeKind() NodeKind { return NodeSymbol }

func (s Symbol) String() string {
	return s.Kind.Glyph()
}
